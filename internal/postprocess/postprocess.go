// Package postprocess strips the chatter LLM backends wrap around a translated
// term so their output can be compared with plain MT engines.
package postprocess

import (
	"regexp"
	"strings"
	"unicode"
)

// Go's RE2 has no backreferences, so each tag pair is spelled out.
var reasoningRe = regexp.MustCompile(
	`(?is)<think>.*?</think>|<thinking>.*?</thinking>|<reasoning>.*?</reasoning>|<reflection>.*?</reflection>`,
)

// An opened reasoning tag that was never closed swallows the rest of the text.
var openReasoningRe = regexp.MustCompile(`(?is)(?:<think>|<thinking>|<reasoning>|<reflection>).*$`)

// labelRe matches "Translation:", "Here is the translation:", "Sure, the term is:" and similar.
var labelRe = regexp.MustCompile(
	`(?i)^(?:(?:sure|certainly|of course)[,.!]?\s*)?(?:here(?:'s| is)\s+)?(?:the\s+)?(?:translated\s+)?(?:translation|term|text)(?:\s+is)?\s*:\s*`,
)

var quotePairs = [][2]rune{
	{'"', '"'},
	{'\'', '\''},
	{'«', '»'},
	{'“', '”'},
	{'‘', '’'},
	{'「', '」'},
	{'『', '』'},
}

// Term reduces raw model output to the translated term: reasoning blocks and
// answer labels are removed, only the first non-empty line is kept, wrapping
// quotes are dropped, and a trailing full stop is removed unless source ends
// with one too.
func Term(raw, source string) string {
	text := reasoningRe.ReplaceAllString(raw, "")
	text = openReasoningRe.ReplaceAllString(text, "")

	text = firstLine(text)
	text = labelRe.ReplaceAllString(text, "")
	text = unquote(strings.TrimSpace(text))

	if !endsWithStop(source) {
		text = strings.TrimRightFunc(text, func(r rune) bool { return r == '.' || r == '。' })
	}
	return strings.TrimSpace(text)
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func unquote(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	first, last := runes[0], runes[len(runes)-1]
	for _, p := range quotePairs {
		if first == p[0] && last == p[1] {
			return strings.TrimSpace(string(runes[1 : len(runes)-1]))
		}
	}
	return text
}

func endsWithStop(source string) bool {
	source = strings.TrimRightFunc(source, unicode.IsSpace)
	return strings.HasSuffix(source, ".") || strings.HasSuffix(source, "。")
}
