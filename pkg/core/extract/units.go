package extract

import "strings"

// scaleWords lists the recognized Indian and international scale words in
// fixed check order. The first word found anywhere in the document wins,
// regardless of its position relative to the figure being scaled.
var scaleWords = []struct {
	Word   string
	Factor float64
}{
	{"crore", 1e7},
	{"lakh", 1e5},
	{"thousand", 1e3},
	{"million", 1e6},
	{"billion", 1e9},
}

// DefaultScaleFactor is applied when a document names no scale word at all.
// Indian filings routinely quote figures in lakhs without saying so; this
// convention misscales non-Indian documents and is kept deliberately.
const DefaultScaleFactor = 1e5

// DetectScaleFactor scans the full document text for a scale word and
// returns the multiplier and the matched unit name. Plural forms are
// covered by the singular substring.
func DetectScaleFactor(text string) (float64, string) {
	lower := strings.ToLower(text)
	for _, s := range scaleWords {
		if strings.Contains(lower, s.Word) {
			return s.Factor, s.Word
		}
	}
	return DefaultScaleFactor, "lakh"
}
