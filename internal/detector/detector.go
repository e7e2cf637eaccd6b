// Package detector picks a source language for a short term by counting
// characters in a few well-known Unicode script blocks.
//
// It is a best-effort default for "auto" requests, not a language identifier.
package detector

import "unicode"

// Threshold is the share of runes a script must exceed before Detect picks it.
const Threshold = 0.1

// Fallback is returned for empty text and for text outside the CJK/Hangul blocks.
const Fallback = "en"

var (
	ideographs = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x4e00, Hi: 0x9fff, Stride: 1}}}
	kana       = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x309f, Stride: 1},
		{Lo: 0x30a0, Hi: 0x30ff, Stride: 1},
	}}
	hangul = &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0xac00, Hi: 0xd7af, Stride: 1}}}
)

// Counts holds per-script rune counts for a piece of text.
type Counts struct {
	Total      int
	Ideographs int
	Kana       int
	Hangul     int
}

// Count tallies the runes of text per script block.
func Count(text string) Counts {
	var c Counts
	for _, r := range text {
		c.Total++
		switch {
		case unicode.Is(ideographs, r):
			c.Ideographs++
		case unicode.Is(kana, r):
			c.Kana++
		case unicode.Is(hangul, r):
			c.Hangul++
		}
	}
	return c
}

// Detect returns one of "ja", "ko", "zh-CN" or "en".
//
// Any kana wins outright; otherwise Hangul and then CJK ideographs must make up
// more than Threshold of the runes.
func Detect(text string) string {
	c := Count(text)
	if c.Total == 0 {
		return Fallback
	}
	if c.Kana > 0 {
		return "ja"
	}
	total := float64(c.Total)
	if float64(c.Hangul)/total > Threshold {
		return "ko"
	}
	if float64(c.Ideographs)/total > Threshold {
		return "zh-CN"
	}
	return Fallback
}

// ContainsIdeograph reports whether text has at least one rune in U+4E00..U+9FFF.
func ContainsIdeograph(text string) bool {
	for _, r := range text {
		if unicode.Is(ideographs, r) {
			return true
		}
	}
	return false
}
