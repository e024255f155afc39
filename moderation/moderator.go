// Package moderation masks forbidden words in message content.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator is safe for concurrent use once built: the automaton is read-only.
type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewModerator builds the Aho-Corasick automaton over the normalized forms of words.
// An empty list yields a moderator that lets everything through.
func NewModerator(words []string, censoredChar rune) (*Moderator, error) {
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if normalized := normalizeRunes([]rune(word)); len(normalized) > 0 {
			patterns = append(patterns, normalized)
		}
	}
	if len(patterns) == 0 {
		return &Moderator{censoredChar: censoredChar}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, censoredChar: censoredChar}, nil
}

// Censor replaces every rune of a forbidden word, including the noise inside it, by the censored char.
// Spacing around the word is preserved.
func (m *Moderator) Censor(original string) string {
	if m == nil || m.matcher == nil {
		return original
	}
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original
	}

	spans := m.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original
	}

	runes := []rune(original)
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(mapping.origIdx) {
			continue
		}
		for i := mapping.origIdx[start]; i <= mapping.origIdx[end-1]; i++ {
			runes[i] = m.censoredChar
		}
	}
	return string(runes)
}

// normalize keeps track of the original position of every rune that survives normalization.
func normalize(input string) textMapping {
	runes := []rune(input)
	mapping := textMapping{
		normalized: make([]rune, 0, len(runes)),
		origIdx:    make([]int, 0, len(runes)),
	}
	for i, r := range runes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		mapping.normalized = append(mapping.normalized, unicode.ToLower(clean))
		mapping.origIdx = append(mapping.origIdx, i)
	}
	return mapping
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps leet speak back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
