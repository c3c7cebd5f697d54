package feed

import (
	"html"
	"strings"
)

// strippedGlyphs are characters known to break downstream feed parsers
var strippedGlyphs = []string{
	"¼",
	"½",
	"¾",
	"⅓",
	"⅔",
	"⅛",
	"⅜",
	"⅝",
	"⅞",
}

// SanitizeDescription removes glyphs the external schema rejects. When
// decodeEntities is set, HTML entities are decoded before the strip and
// re-encoded afterwards so glyphs hidden inside encoded text are caught
// as well.
func SanitizeDescription(s string, decodeEntities bool) string {
	if decodeEntities {
		s = html.UnescapeString(s)
	}
	for _, g := range strippedGlyphs {
		s = strings.ReplaceAll(s, g, "")
	}
	if decodeEntities {
		s = html.EscapeString(s)
	}
	return s
}
