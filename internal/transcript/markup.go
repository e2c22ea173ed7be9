// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import "strings"

// =============================================================================
// SPAN TYPES
// =============================================================================

// SpanKind classifies one run of text inside a line.
type SpanKind int

const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
)

// Span is one styled run of text. URL is set only for SpanLink.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// Line is an ordered sequence of spans rendered on one terminal row.
type Line []Span

// Paragraph is a blank-line-separated block of the message body.
type Paragraph []Line

// =============================================================================
// PARSER
// =============================================================================

// Parse splits a message body into paragraphs of span lines. The markup
// subset matches what the backend emits: **bold**, *italic*, `inline
// code`, [label](url) links, and blank lines as paragraph breaks.
// Unterminated markers are kept as literal text.
func Parse(text string) []Paragraph {
	var paragraphs []Paragraph

	for _, block := range strings.Split(text, "\n\n") {
		block = strings.Trim(block, "\n")
		if block == "" {
			continue
		}
		var para Paragraph
		for _, line := range strings.Split(block, "\n") {
			para = append(para, parseLine(line))
		}
		paragraphs = append(paragraphs, para)
	}

	return paragraphs
}

// parseLine scans one line left to right, splitting out inline markup.
func parseLine(line string) Line {
	var spans Line
	runes := []rune(line)
	var plain []rune

	flush := func() {
		if len(plain) > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: string(plain)})
			plain = plain[:0]
		}
	}

	i := 0
	for i < len(runes) {
		switch {
		case hasPrefixAt(runes, i, "**"):
			if end := indexFrom(runes, i+2, "**"); end >= 0 && end > i+2 {
				flush()
				spans = append(spans, Span{Kind: SpanBold, Text: string(runes[i+2 : end])})
				i = end + 2
				continue
			}
		case runes[i] == '*':
			if end := indexRuneFrom(runes, i+1, '*'); end >= 0 && end > i+1 {
				flush()
				spans = append(spans, Span{Kind: SpanItalic, Text: string(runes[i+1 : end])})
				i = end + 1
				continue
			}
		case runes[i] == '`':
			if end := indexRuneFrom(runes, i+1, '`'); end >= 0 && end > i+1 {
				flush()
				spans = append(spans, Span{Kind: SpanCode, Text: string(runes[i+1 : end])})
				i = end + 1
				continue
			}
		case runes[i] == '[':
			if label, url, next, ok := parseLink(runes, i); ok {
				flush()
				spans = append(spans, Span{Kind: SpanLink, Text: label, URL: url})
				i = next
				continue
			}
		}
		plain = append(plain, runes[i])
		i++
	}
	flush()

	if spans == nil {
		spans = Line{}
	}
	return spans
}

// parseLink matches [label](url) starting at runes[i] == '['.
func parseLink(runes []rune, i int) (label, url string, next int, ok bool) {
	labelEnd := indexRuneFrom(runes, i+1, ']')
	if labelEnd < 0 || labelEnd == i+1 {
		return "", "", 0, false
	}
	if labelEnd+1 >= len(runes) || runes[labelEnd+1] != '(' {
		return "", "", 0, false
	}
	end := indexRuneFrom(runes, labelEnd+2, ')')
	if end < 0 || end == labelEnd+2 {
		return "", "", 0, false
	}
	return string(runes[i+1 : labelEnd]), string(runes[labelEnd+2 : end]), end + 1, true
}

func hasPrefixAt(runes []rune, i int, prefix string) bool {
	p := []rune(prefix)
	if i+len(p) > len(runes) {
		return false
	}
	for j, r := range p {
		if runes[i+j] != r {
			return false
		}
	}
	return true
}

func indexFrom(runes []rune, start int, sep string) int {
	for i := start; i <= len(runes)-len([]rune(sep)); i++ {
		if hasPrefixAt(runes, i, sep) {
			return i
		}
	}
	return -1
}

func indexRuneFrom(runes []rune, start int, r rune) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
