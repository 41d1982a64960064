package spoke

import (
	"fmt"
	"strings"
)

// FAQ is one question/answer pair. The answer may contain markup; the
// structured-data block carries the same answer with markup stripped, so the
// visible text and the FAQPage text always agree.
type FAQ struct {
	Question string
	Answer   string
}

func renderFAQsHTML(faqs []FAQ) string {
	var sections []string
	for _, faq := range faqs {
		sections = append(sections, fmt.Sprintf("<h3>%s</h3>\n<p>%s</p>", faq.Question, faq.Answer))
	}

	return strings.Join(sections, "\n")
}
