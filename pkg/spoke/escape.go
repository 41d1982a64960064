package spoke

import (
	"regexp"
	"strconv"
	"strings"
)

var tagRegex = regexp.MustCompile(`<[^>]+>`)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// jsEscaper makes a string safe inside a single-quoted script literal.
var jsEscaper = strings.NewReplacer(
	`\`, `\\`,
	"'", `\'`,
	"\n", `\n`,
	"\r", ``,
	"</", `<\/`,
)

func escapeHTML(value string) string {
	return htmlEscaper.Replace(value)
}

func escapeJS(value string) string {
	return jsEscaper.Replace(value)
}

// stripTags reduces an HTML fragment to its visible text, for the
// structured-data answers.
func stripTags(fragment string) string {
	return tagRegex.ReplaceAllString(fragment, "")
}

// formatCoordinate renders a latitude or longitude the way it appears in the
// source data, with no trailing zeros.
func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
