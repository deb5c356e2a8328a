package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isSentenceEnd reports whether r terminates a sentence
func isSentenceEnd(r byte) bool {
	return r == '.' || r == '!' || r == '?'
}

// SegmentSentences splits an email body into numbered sentences. The text is
// cut immediately after any '.', '!' or '?' that is followed by whitespace;
// the whitespace run is consumed as the separator. Empty or all-whitespace
// pieces are discarded, and line ids are assigned contiguously from 1 over
// the surviving pieces. An empty input yields an empty slice.
func SegmentSentences(text string) []Sentence {
	if text == "" {
		return nil
	}

	var pieces []string
	start := 0
	i := 0
	for i < len(text) {
		if isSentenceEnd(text[i]) && i+1 < len(text) && isSpaceAt(text, i+1) {
			pieces = append(pieces, text[start:i+1])
			i++
			for i < len(text) {
				r, size := utf8.DecodeRuneInString(text[i:])
				if !unicode.IsSpace(r) {
					break
				}
				i += size
			}
			start = i
			continue
		}
		i++
	}
	if start < len(text) {
		pieces = append(pieces, text[start:])
	}

	sentences := make([]Sentence, 0, len(pieces))
	for _, p := range pieces {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		sentences = append(sentences, Sentence{
			LineID: len(sentences) + 1,
			Text:   trimmed,
		})
	}
	return sentences
}

// isSpaceAt reports whether the byte at index i starts a whitespace rune
func isSpaceAt(s string, i int) bool {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsSpace(r)
}
