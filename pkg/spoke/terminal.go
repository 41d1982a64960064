package spoke

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/rosscodg/railreach/pkg/registry"
	"github.com/rosscodg/railreach/pkg/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// ErrTerminalNotFound means a configured terminal has no record in the
// dataset and no grid reference to fall back on.
var ErrTerminalNotFound = errors.New("terminal not found in dataset")

const servingThresholdMins = 90

type servingStation struct {
	Name   string
	Mins   int
	Direct bool
}

// servingStations lists every station within the 90 minute threshold of the
// terminal, ascending by journey time, ties keeping dataset order.
func (g *Generator) servingStations(terminalCode string) []servingStation {
	var serving []servingStation

	for _, station := range g.Dataset.Stations {
		journey := station.JourneyTo(terminalCode)
		if journey != nil && journey.Mins <= servingThresholdMins {
			serving = append(serving, servingStation{
				Name:   station.Name,
				Mins:   journey.Mins,
				Direct: journey.Direct,
			})
		}
	}

	sort.SliceStable(serving, func(i, j int) bool {
		return serving[i].Mins < serving[j].Mins
	})

	return serving
}

// terminalRegion describes the part of the country a terminal serves.
func terminalRegion(code string) string {
	switch {
	case slices.Contains([]string{"KGX", "EUS"}, code):
		return "the north and east of England"
	case slices.Contains([]string{"VIC", "LBG"}, code):
		return "the south and southeast"
	case slices.Contains([]string{"PAD", "WAT"}, code):
		return "the west and southwest"
	case slices.Contains([]string{"LST", "FST"}, code):
		return "East Anglia and Essex"
	default:
		return "the Chiltern hills and Buckinghamshire"
	}
}

func terminalFAQs(meta *registry.TerminalMeta, serving []servingStation) []FAQ {
	count := len(serving)

	var top5Names []string
	for _, station := range serving[:min(5, count)] {
		top5Names = append(top5Names, station.Name)
	}
	top5 := strings.Join(top5Names, ", ")

	under30 := append([]servingStation{}, serving...)
	util.InPlaceFilter(&under30, func(station servingStation) bool {
		return station.Mins < 30
	})

	under30Names := "none within 30 minutes"
	if len(under30) > 0 {
		var names []string
		for _, station := range under30[:min(5, len(under30))] {
			names = append(names, station.Name)
		}
		under30Names = strings.Join(names, ", ")
	}

	fastestText := ""
	if count > 0 {
		fastestText = fmt.Sprintf("The fastest connection is from %s at just %d minutes.", serving[0].Name, serving[0].Mins)
	}

	return []FAQ{
		{
			Question: fmt.Sprintf("What is the fastest train to %s?", meta.Name),
			Answer:   fmt.Sprintf("%s Services are operated by %s.", fastestText, meta.Operators),
		},
		{
			Question: fmt.Sprintf("Which commuter towns are within 30 minutes of %s?", meta.Name),
			Answer:   fmt.Sprintf("Stations reachable within 30 minutes include %s. These are popular choices for London commuters seeking shorter journey times.", under30Names),
		},
		{
			Question: fmt.Sprintf("How many stations connect to %s?", meta.Name),
			Answer:   fmt.Sprintf("%d stations have services to London %s within 90 minutes. The terminal is served by %s.", count, meta.Name, meta.Operators),
		},
		{
			Question: fmt.Sprintf("What areas does %s serve?", meta.Name),
			Answer:   fmt.Sprintf("London %s primarily serves %s. Key destinations include %s.", meta.Name, terminalRegion(meta.Code), top5),
		},
		{
			Question: fmt.Sprintf("Is %s a good commuter terminal?", meta.Name),
			Answer:   fmt.Sprintf("Yes. With %d stations within 90 minutes and frequent peak-hour services, %s is one of London&#39;s busiest commuter terminals. Top commuter stations include %s.", count, meta.Name, top5),
		},
	}
}

type terminalPageData struct {
	Code      string
	Name      string
	Slug      string
	Operators string

	Count int
	Top3  string
	Top5  string

	TableRows   string
	TerminalNav string
	FAQsHTML    string

	BreadcrumbLD string
	FAQLD        string

	TerminalJS string
}

// RenderTerminalPage produces the complete HTML document for one terminal.
func (g *Generator) RenderTerminalPage(meta *registry.TerminalMeta) (string, error) {
	return g.renderTerminalPage(meta, g.servingStations(meta.Code))
}

func (g *Generator) renderTerminalPage(meta *registry.TerminalMeta, serving []servingStation) (string, error) {
	terminalJS, err := g.terminalObjectJS(meta)
	if err != nil {
		return "", err
	}

	var top3Parts, top5Parts, tableRows []string
	for index, station := range serving {
		if index < 3 {
			top3Parts = append(top3Parts, fmt.Sprintf("%s (%d min)", station.Name, station.Mins))
		}
		if index < 5 {
			top5Parts = append(top5Parts, station.Name)
		}

		tableRows = append(tableRows, fmt.Sprintf("<tr><td>%s</td><td>%d min</td><td>%s</td></tr>",
			escapeHTML(station.Name), station.Mins, yesNo(station.Direct)))
	}

	faqs := terminalFAQs(meta, serving)

	pageURL := fmt.Sprintf("%s/terminals/%s/", siteURL, meta.Slug)
	breadcrumb, err := breadcrumbLD(fmt.Sprintf("%s Train Times", meta.Name), pageURL)
	if err != nil {
		return "", err
	}
	faqBlock, err := faqLD(faqs)
	if err != nil {
		return "", err
	}

	data := terminalPageData{
		Code:      meta.Code,
		Name:      meta.Name,
		Slug:      meta.Slug,
		Operators: meta.Operators,

		Count: len(serving),
		Top3:  strings.Join(top3Parts, ", "),
		Top5:  strings.Join(top5Parts, ", "),

		TableRows:   strings.Join(tableRows, "\n"),
		TerminalNav: g.terminalNav(meta.Code),
		FAQsHTML:    renderFAQsHTML(faqs),

		BreadcrumbLD: breadcrumb,
		FAQLD:        faqBlock,

		TerminalJS: terminalJS,
	}

	var builder strings.Builder
	if err := terminalPageTemplate.Execute(&builder, data); err != nil {
		return "", err
	}

	return builder.String(), nil
}

// GenerateTerminalPage renders and persists one terminal page.
func (g *Generator) GenerateTerminalPage(meta *registry.TerminalMeta) error {
	serving := g.servingStations(meta.Code)

	html, err := g.renderTerminalPage(meta, serving)
	if err != nil {
		return err
	}

	outputDir := filepath.Join(g.OutputDir, "terminals", meta.Slug)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	outputPath := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return err
	}

	log.Info().
		Str("terminal", meta.Name).
		Str("path", outputPath).
		Int("stations", len(serving)).
		Msg("Generated terminal page")

	return nil
}

// terminalObjectJS is the script expression for the terminal's map object.
// Terminals present in the dataset read straight from the shared data
// script; otherwise the coordinate comes from the registry grid reference.
func (g *Generator) terminalObjectJS(meta *registry.TerminalMeta) (string, error) {
	if _, ok := g.Dataset.Terminals[meta.Code]; ok {
		return "TERMINALS[code]", nil
	}

	location, ok := meta.FallbackLocation()
	if !ok {
		return "", ErrTerminalNotFound
	}

	return fmt.Sprintf("{name:'%s',lat:%s,lng:%s}",
		escapeJS(meta.Name), formatCoordinate(location.Latitude), formatCoordinate(location.Longitude)), nil
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}

	return "No"
}

var terminalPageTemplate = template.Must(template.New("terminal").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Name}} Train Times | Journey Times to London {{.Name}} | RailReach</title>
<meta name="description" content="Train journey times to London {{.Name}} from {{.Count}}+ stations. Interactive map — {{.Top3}}. Free 2026 timetable data.">
<link rel="canonical" href="https://railreach.co.uk/terminals/{{.Slug}}/">
<meta property="og:type" content="website">
<meta property="og:url" content="https://railreach.co.uk/terminals/{{.Slug}}/">
<meta property="og:title" content="{{.Name}} Train Times | RailReach">
<meta property="og:description" content="Interactive map showing train times to {{.Name}} from {{.Count}}+ stations.">
<meta property="og:site_name" content="RailReach">
<meta property="og:image" content="https://railreach.co.uk/og-image.png">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:image" content="https://railreach.co.uk/og-image.png">
<meta name="theme-color" content="#1e293b">
<link rel="icon" href="/favicon.ico" sizes="32x32">
<link rel="icon" href="/favicon.svg" type="image/svg+xml">
<link rel="apple-touch-icon" href="/apple-touch-icon.png">
<link rel="manifest" href="/manifest.json">
<script async src="https://www.googletagmanager.com/gtag/js?id=G-HKGQBJT0D3"></script>
<script>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments)}gtag('js',new Date());gtag('config','G-HKGQBJT0D3');</script>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600&display=swap" rel="stylesheet">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<link rel="stylesheet" href="../../assets/css/shared.css">
</head>
<body>
<header class="site-header">
<nav aria-label="Breadcrumb"><ol class="breadcrumb"><li><a href="/">RailReach</a></li><li>{{.Name}} Train Times</li></ol></nav>
</header>
<div id="map" role="application" aria-label="Map of train journey times to {{.Name}}"></div>
<div class="legend">
  <h4>Journey Time</h4>
  <div class="legend-item"><div class="legend-dot" style="background:#22c55e"></div> Under 30 min</div>
  <div class="legend-item"><div class="legend-dot" style="background:#f59e0b"></div> 30–60 min</div>
  <div class="legend-item"><div class="legend-dot" style="background:#ef4444"></div> 60–90 min</div>
  <div class="legend-item"><div class="legend-dot" style="background:#7c3aed"></div> London Terminal</div>
</div>
<div class="station-count" id="station-count"></div>
<div id="promo-banner">
  <a id="promo-slot-1" href="https://www.connells.co.uk/" target="_blank" rel="noopener">
    <div class="promo-connells">
      <div class="promo-logo">Connells<span>Est. 1936</span></div>
      <div class="promo-body">
        <div class="promo-headline">Found your perfect commute? Now find your perfect home.</div>
        <div class="promo-sub">Over 150 branches nationwide &bull; Free online valuations &bull; Expert local knowledge</div>
      </div>
      <div class="promo-cta">Search Now</div>
    </div>
  </a>
</div>
<button class="toggle-content" onclick="document.querySelector('.spoke-content').classList.toggle('open');this.textContent=this.textContent==='Show Details'?'Hide Details':'Show Details'">Show Details</button>
<div class="spoke-content">
<h1>Train Journey Times to {{.Name}}</h1>
<p>{{.Name}} is served by {{.Operators}}. {{.Count}}+ stations connect to {{.Name}} within 90 minutes. Key commuter towns include {{.Top5}}.</p>
<h2>Other London Terminals</h2>
<div class="terminal-nav">{{.TerminalNav}}</div>
<h2>Frequently Asked Questions</h2>
{{.FAQsHTML}}
<h2>All Stations to {{.Name}}</h2>
<table><thead><tr><th>Station</th><th>Time</th><th>Direct?</th></tr></thead><tbody>
{{.TableRows}}
</tbody></table>
</div>

<script type="application/ld+json">{{.BreadcrumbLD}}</script>
<script type="application/ld+json">{{.FAQLD}}</script>

<script src="../../assets/js/stations-data.js"></script>
<script src="../../assets/js/map-core.js"></script>
<script>
const code='{{.Code}}';
const t={{.TerminalJS}};
const map=initMap(t.lat,t.lng,8);
createTerminalMarker(map,t.lat,t.lng,'<strong>'+t.name+'</strong><br>London Terminal');
let count=0;
STATIONS.forEach(s=>{const j=s.journeys[code];if(j&&j.mins<=90){createStationMarker(map,s.lat,s.lng,j.mins,'<strong>'+s.name+'</strong><br>To '+t.name+': <strong>'+j.mins+' min</strong><br>'+(j.direct?'Direct train':'Requires change'));count++}});
document.getElementById('station-count').textContent=count+' stations within 90 min of '+t.name;
</script>
<script>if('serviceWorker' in navigator)navigator.serviceWorker.register('/sw.js');</script>
</body></html>`))
