// Package view holds the embedded HTML templates and the presentation
// helpers they use. Templates receive plain data structures from the
// handlers; all upstream entities are passed through untouched except for
// the two display mappings below.
package view

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded template set with the presentation helpers
// registered
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(files, "templates/*.html")
}

// FuncMap returns the template helper functions
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate":     FormatDate,
		"formatPosition": FormatPosition,
	}
}

// dateLayouts are the timestamp shapes the upstream API emits
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// FormatDate renders an ISO-8601 timestamp as DD/MM/YYYY for display.
// Unparseable input is shown verbatim; an empty input reads "Date inconnue".
func FormatDate(value string) string {
	if value == "" {
		return "Date inconnue"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return value
}

// positionNames maps upstream position codes to bilingual display labels
var positionNames = map[string]string{
	"G":   "Guard (Meneur)",
	"PG":  "Point Guard (Meneur)",
	"SG":  "Shooting Guard (Arrière)",
	"F":   "Forward (Ailier)",
	"SF":  "Small Forward (Ailier)",
	"PF":  "Power Forward (Ailier fort)",
	"C":   "Center (Pivot)",
	"G-F": "Guard-Forward (Meneur-Ailier)",
	"F-G": "Forward-Guard (Ailier-Meneur)",
	"F-C": "Forward-Center (Ailier-Pivot)",
	"C-F": "Center-Forward (Pivot-Ailier)",
}

// FormatPosition renders a position code as its descriptive label. Unknown
// codes are shown verbatim; an empty position renders as empty.
func FormatPosition(position string) string {
	if position == "" {
		return ""
	}
	if name, ok := positionNames[position]; ok {
		return name
	}
	return position
}
