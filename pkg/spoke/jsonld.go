package spoke

import (
	"bytes"
	"encoding/json"
	"strings"
)

const siteURL = "https://railreach.co.uk"

type breadcrumbList struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	ItemListElement []breadcrumbItem `json:"itemListElement"`
}

type breadcrumbItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type faqPage struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	MainEntity []faqQuestion `json:"mainEntity"`
}

type faqQuestion struct {
	Type           string    `json:"@type"`
	Name           string    `json:"name"`
	AcceptedAnswer faqAnswer `json:"acceptedAnswer"`
}

type faqAnswer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

func breadcrumbLD(pageName string, pageURL string) (string, error) {
	return marshalLD(breadcrumbList{
		Context: "https://schema.org",
		Type:    "BreadcrumbList",
		ItemListElement: []breadcrumbItem{
			{Type: "ListItem", Position: 1, Name: "RailReach", Item: siteURL + "/"},
			{Type: "ListItem", Position: 2, Name: pageName, Item: pageURL},
		},
	})
}

func faqLD(faqs []FAQ) (string, error) {
	page := faqPage{
		Context: "https://schema.org",
		Type:    "FAQPage",
	}

	for _, faq := range faqs {
		page.MainEntity = append(page.MainEntity, faqQuestion{
			Type: "Question",
			Name: faq.Question,
			AcceptedAnswer: faqAnswer{
				Type: "Answer",
				Text: stripTags(faq.Answer),
			},
		})
	}

	return marshalLD(page)
}

// marshalLD encodes without HTML escaping so the structured-data text reads
// exactly like the visible page text.
func marshalLD(value any) (string, error) {
	var buffer bytes.Buffer

	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "")

	if err := encoder.Encode(value); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buffer.String(), "\n"), nil
}
