package spoke

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/rosscodg/railreach/pkg/railreach"
	"github.com/rosscodg/railreach/pkg/util"
	"github.com/rs/zerolog/log"
)

// ErrStationNotFound means a configured station name has no matching record
// in the dataset. The caller skips the page and carries on.
var ErrStationNotFound = errors.New("station not found in dataset")

type nearbyStation struct {
	Name       string
	DistanceKm float64
	Slug       string
}

// nearestStations lists the other stations ascending by great-circle
// distance from the given station.
func (g *Generator) nearestStations(station *railreach.Station) []nearbyStation {
	candidates := append([]*railreach.Station{}, g.Dataset.Stations...)
	util.InPlaceFilter(&candidates, func(other *railreach.Station) bool {
		return other.Name != station.Name
	})

	var nearby []nearbyStation
	for _, other := range candidates {
		slug, _ := g.Registry.StationSlug(other.Name)

		nearby = append(nearby, nearbyStation{
			Name:       other.Name,
			DistanceKm: station.Location.DistanceFrom(other.Location),
			Slug:       slug,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby
}

// commuterVerdict picks the suitability phrasing for the fastest journey.
func commuterVerdict(fastestMins int) string {
	switch {
	case fastestMins < 30:
		return "is an excellent commuter choice with a sub-30-minute journey"
	case fastestMins < 60:
		return "offers a reasonable commute under an hour"
	default:
		return "is a longer commute but offers good value and quality of life"
	}
}

func (g *Generator) stationFAQs(station *railreach.Station, journeys []railreach.Journey, nearby []nearbyStation) []FAQ {
	fastest := journeys[0]
	fastestName := g.terminalName(fastest.TerminalCode)

	var terminalNames []string
	for _, journey := range journeys {
		terminalNames = append(terminalNames, g.terminalName(journey.TerminalCode))
	}
	terminalList := strings.Join(terminalNames, ", ")

	var directNames []string
	for _, journey := range journeys {
		if journey.Direct {
			directNames = append(directNames, g.terminalName(journey.TerminalCode))
		}
	}
	directText := "none (all require changes)"
	if len(directNames) > 0 {
		directText = strings.Join(directNames, ", ")
	}

	fastestQualifier := ", requires change"
	if fastest.Direct {
		fastestQualifier = ", direct"
	}

	directSentence := "A change of train is required on most services."
	if fastest.Direct {
		directSentence = "Direct trains make the commute straightforward."
	}

	var nearbyNames []string
	for _, neighbour := range nearby[:min(3, len(nearby))] {
		nearbyNames = append(nearbyNames, neighbour.Name)
	}

	return []FAQ{
		{
			Question: fmt.Sprintf("How long does it take to get from %s to London?", station.Name),
			Answer: fmt.Sprintf("The fastest train from %s reaches London %s in %d minutes. %s connects to %d London terminal%s: %s.",
				station.Name, fastestName, fastest.Mins, station.Name, len(journeys), util.Pluralise(len(journeys)), terminalList),
		},
		{
			Question: fmt.Sprintf("Which London station should I travel to from %s?", station.Name),
			Answer: fmt.Sprintf("The quickest route is to %s (%d min%s). Direct services are available to %s.",
				fastestName, fastest.Mins, fastestQualifier, directText),
		},
		{
			Question: fmt.Sprintf("Is %s a good commuter town for London?", station.Name),
			Answer: fmt.Sprintf("With a fastest journey time of %d minutes to London %s, %s %s. %s",
				fastest.Mins, fastestName, station.Name, commuterVerdict(fastest.Mins), directSentence),
		},
		{
			Question: fmt.Sprintf("What are the nearest stations to %s?", station.Name),
			Answer: fmt.Sprintf("Nearby stations include %s. These offer alternative routes into London from the %s area.",
				strings.Join(nearbyNames, ", "), station.Name),
		},
	}
}

type stationPageData struct {
	Name string
	Slug string

	Lat string
	Lng string

	TerminalCount     int
	TerminalPlural    string
	FastestName       string
	FastestMins       int
	FastestSuffix     string
	TimesDescription  string
	TableRows         string
	TerminalNav       string
	FAQsHTML          string
	NearbyItems       string
	BreadcrumbLD      string
	FAQLD             string
	NameJS            string
	TerminalMarkersJS string
	PolylinesJS       string
	CountLabelJS      string
}

// RenderStationPage produces the complete HTML document for one station, or
// ErrStationNotFound when the dataset has no record for the name.
func (g *Generator) RenderStationPage(stationName string, slug string) (string, error) {
	station := g.Dataset.Station(stationName)
	if station == nil {
		return "", ErrStationNotFound
	}

	journeys := station.JourneysByDuration()
	if len(journeys) == 0 {
		return "", ErrStationNotFound
	}

	fastest := journeys[0]
	fastestName := g.terminalName(fastest.TerminalCode)

	var timesParts []string
	for _, journey := range journeys[:min(3, len(journeys))] {
		timesParts = append(timesParts, fmt.Sprintf("%s (%d min)", g.terminalName(journey.TerminalCode), journey.Mins))
	}

	nearby := g.nearestStations(station)
	if len(nearby) > 5 {
		nearby = nearby[:5]
	}

	var nearbyItems []string
	for _, neighbour := range nearby {
		if neighbour.Slug != "" {
			nearbyItems = append(nearbyItems, fmt.Sprintf(`<li><a href="/stations/%s/">%s</a> (%.0f km away)</li>`,
				neighbour.Slug, escapeHTML(neighbour.Name), neighbour.DistanceKm))
		} else {
			nearbyItems = append(nearbyItems, fmt.Sprintf("<li>%s (%.0f km away)</li>",
				escapeHTML(neighbour.Name), neighbour.DistanceKm))
		}
	}

	var tableRows []string
	for _, journey := range journeys {
		terminalMeta := g.Registry.Terminal(journey.TerminalCode)
		if terminalMeta == nil {
			continue
		}

		tableRows = append(tableRows, fmt.Sprintf(`<tr><td><a href="/terminals/%s/">%s</a></td><td>%d min</td><td>%s</td></tr>`,
			terminalMeta.Slug, terminalMeta.Name, journey.Mins, yesNo(journey.Direct)))
	}

	faqs := g.stationFAQs(station, journeys, nearby)

	pageURL := fmt.Sprintf("%s/stations/%s/", siteURL, slug)
	breadcrumb, err := breadcrumbLD(fmt.Sprintf("%s to London", station.Name), pageURL)
	if err != nil {
		return "", err
	}
	faqBlock, err := faqLD(faqs)
	if err != nil {
		return "", err
	}

	fastestSuffix := " (requires change)"
	if fastest.Direct {
		fastestSuffix = " (direct)"
	}

	data := stationPageData{
		Name: station.Name,
		Slug: slug,

		Lat: formatCoordinate(station.Location.Latitude),
		Lng: formatCoordinate(station.Location.Longitude),

		TerminalCount:    len(journeys),
		TerminalPlural:   util.Pluralise(len(journeys)),
		FastestName:      fastestName,
		FastestMins:      fastest.Mins,
		FastestSuffix:    fastestSuffix,
		TimesDescription: strings.Join(timesParts, ", "),

		TableRows:   strings.Join(tableRows, "\n"),
		TerminalNav: g.terminalNav(""),
		FAQsHTML:    renderFAQsHTML(faqs),
		NearbyItems: strings.Join(nearbyItems, "\n"),

		BreadcrumbLD: breadcrumb,
		FAQLD:        faqBlock,

		NameJS:            escapeJS(station.Name),
		TerminalMarkersJS: g.terminalMarkersJS(station, journeys),
		PolylinesJS:       g.polylinesJS(station, journeys),
		CountLabelJS: escapeJS(fmt.Sprintf("%s — %d London terminal%s",
			station.Name, len(journeys), util.Pluralise(len(journeys)))),
	}

	var builder strings.Builder
	if err := stationPageTemplate.Execute(&builder, data); err != nil {
		return "", err
	}

	return builder.String(), nil
}

// GenerateStationPage renders and persists one station page.
func (g *Generator) GenerateStationPage(stationName string, slug string) error {
	html, err := g.RenderStationPage(stationName, slug)
	if err != nil {
		return err
	}

	outputDir := filepath.Join(g.OutputDir, "stations", slug)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	outputPath := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return err
	}

	log.Info().
		Str("station", stationName).
		Str("path", outputPath).
		Msg("Generated station page")

	return nil
}

// terminalMarkersJS draws one marker per connected terminal. Popup text sits
// inside a single-quoted script literal so it goes through escapeJS.
func (g *Generator) terminalMarkersJS(station *railreach.Station, journeys []railreach.Journey) string {
	var markers []string

	for _, journey := range journeys {
		terminal, ok := g.Dataset.Terminals[journey.TerminalCode]
		if !ok {
			continue
		}

		directLabel := "Requires change"
		if journey.Direct {
			directLabel = "Direct"
		}

		markers = append(markers, fmt.Sprintf("createTerminalMarker(map,%s,%s,'<strong>%s</strong><br>%d min from %s<br>%s');",
			formatCoordinate(terminal.Location.Latitude), formatCoordinate(terminal.Location.Longitude),
			escapeJS(g.terminalName(journey.TerminalCode)), journey.Mins, escapeJS(station.Name), directLabel))
	}

	return strings.Join(markers, "\n")
}

// polylinesJS draws one route line per connection, coloured by the duration
// bucket and dashed when a change is required.
func (g *Generator) polylinesJS(station *railreach.Station, journeys []railreach.Journey) string {
	var lines []string

	for _, journey := range journeys {
		terminal, ok := g.Dataset.Terminals[journey.TerminalCode]
		if !ok {
			continue
		}

		dash := ""
		if !journey.Direct {
			dash = "dashArray:'8,6',"
		}

		lines = append(lines, fmt.Sprintf("L.polyline([[%s,%s],[%s,%s]],{color:getColor(%d),weight:3,opacity:0.7,%s}).addTo(map);",
			formatCoordinate(station.Location.Latitude), formatCoordinate(station.Location.Longitude),
			formatCoordinate(terminal.Location.Latitude), formatCoordinate(terminal.Location.Longitude),
			journey.Mins, dash))
	}

	return strings.Join(lines, "\n")
}

var stationPageTemplate = template.Must(template.New("station").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Name}} to London Train Times | Journey Times from {{.Name}} | RailReach</title>
<meta name="description" content="Train times from {{.Name}} to London — {{.TimesDescription}}. Interactive map with direct and indirect routes. Free 2026 timetable data.">
<link rel="canonical" href="https://railreach.co.uk/stations/{{.Slug}}/">
<meta property="og:type" content="website">
<meta property="og:url" content="https://railreach.co.uk/stations/{{.Slug}}/">
<meta property="og:title" content="{{.Name}} to London Train Times | RailReach">
<meta property="og:description" content="Journey times from {{.Name}} to London terminals. {{.FastestName}} in {{.FastestMins}} min.">
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
<nav aria-label="Breadcrumb"><ol class="breadcrumb"><li><a href="/">RailReach</a></li><li>{{.Name}} to London</li></ol></nav>
</header>
<div id="map" role="application" aria-label="Map showing train routes from {{.Name}} to London"></div>
<div class="legend">
  <h4>Journey Time</h4>
  <div class="legend-item"><div class="legend-dot" style="background:#22c55e"></div> Under 30 min</div>
  <div class="legend-item"><div class="legend-dot" style="background:#f59e0b"></div> 30–60 min</div>
  <div class="legend-item"><div class="legend-dot" style="background:#ef4444"></div> 60–90 min</div>
  <div class="legend-item"><div class="legend-dot" style="background:#3b82f6"></div> This Station</div>
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
<h1>Train Times from {{.Name}} to London</h1>
<p>{{.Name}} connects to {{.TerminalCount}} London terminal{{.TerminalPlural}}. The fastest route is to {{.FastestName}} in {{.FastestMins}} minutes{{.FastestSuffix}}.</p>
<h2>Journey Comparison</h2>
<table><thead><tr><th>London Terminal</th><th>Time</th><th>Direct?</th></tr></thead><tbody>
{{.TableRows}}
</tbody></table>
<h2>London Terminals</h2>
<div class="terminal-nav">{{.TerminalNav}}</div>
<h2>Frequently Asked Questions</h2>
{{.FAQsHTML}}
<h2>Nearby Stations</h2>
<ul>
{{.NearbyItems}}
</ul>
</div>

<script type="application/ld+json">{{.BreadcrumbLD}}</script>
<script type="application/ld+json">{{.FAQLD}}</script>

<script src="../../assets/js/stations-data.js"></script>
<script src="../../assets/js/map-core.js"></script>
<script>
const map=initMap({{.Lat}},{{.Lng}},9);
// Station marker (blue)
L.circleMarker([{{.Lat}},{{.Lng}}],{radius:12,fillColor:'#3b82f6',color:'#fff',weight:3,opacity:1,fillOpacity:0.9}).bindPopup('<strong>{{.NameJS}}</strong>').addTo(map);
// Terminal markers
{{.TerminalMarkersJS}}
// Polylines
{{.PolylinesJS}}
document.getElementById('station-count').textContent='{{.CountLabelJS}}';
</script>
<script>if('serviceWorker' in navigator)navigator.serviceWorker.register('/sw.js');</script>
</body></html>`))
