package lithoparse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexToken augments the public Token with the resolved vocabulary phrase.
// For fuzzy-corrected words the Token keeps the original text while
// canonical holds the corrected term the extractor should act on.
type lexToken struct {
	Token
	canonical string
	value     int
}

type span struct {
	text  string
	start int
	end   int
}

// tokenize splits the input into typed tokens, attempting the longest known
// multi-word phrase at each position before shorter ones, and invoking the
// fuzzy corrector on words that match nothing. It never fails; unrecognized
// spans become unknown tokens. Empty input yields no tokens.
func tokenize(input string) ([]lexToken, []SpellingCorrection) {
	words := splitWords(input)
	if len(words) == 0 {
		return nil, nil
	}

	tokens := make([]lexToken, 0, len(words))
	var corrections []SpellingCorrection

	i := 0
	for i < len(words) {
		longest := maxPhraseWords
		if rem := len(words) - i; longest > rem {
			longest = rem
		}

		matched := false
		for n := longest; n >= 1; n-- {
			key := phraseKey(words[i : i+n])
			entry, ok := vocabulary[key]
			if !ok {
				continue
			}
			tokens = append(tokens, lexToken{
				Token: Token{
					Kind:  entry.kind,
					Text:  phraseText(words[i : i+n]),
					Start: words[i].start,
					End:   words[i+n-1].end,
				},
				canonical: key,
				value:     entry.value,
			})
			i += n
			matched = true
			break
		}
		if matched {
			continue
		}

		w := words[i]
		if canonical, score, ok := correctWord(w.text); ok {
			entry := vocabulary[canonical]
			tokens = append(tokens, lexToken{
				Token: Token{Kind: entry.kind, Text: w.text, Start: w.start, End: w.end},
				canonical: canonical,
				value:     entry.value,
			})
			corrections = append(corrections, SpellingCorrection{
				Original:        strings.ToLower(w.text),
				Corrected:       canonical,
				SimilarityScore: score,
			})
		} else {
			tokens = append(tokens, lexToken{
				Token: Token{Kind: TokenUnknown, Text: w.text, Start: w.start, End: w.end},
				value: -1,
			})
		}
		i++
	}

	return tokens, corrections
}

// splitWords breaks the input on whitespace, recording byte offsets and
// stripping punctuation from word edges. Hyphens survive so terms like
// "non-plastic" stay whole.
func splitWords(input string) []span {
	var words []span

	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(input) {
			r, size = utf8.DecodeRuneInString(input[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		raw := input[start:i]

		trimmed := strings.TrimFunc(raw, isEdgePunct)
		if trimmed == "" {
			continue
		}
		offset := strings.Index(raw, trimmed)
		words = append(words, span{
			text:  trimmed,
			start: start + offset,
			end:   start + offset + len(trimmed),
		})
	}
	return words
}

func isEdgePunct(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '(', ')', '[', ']', '"', '\'':
		return true
	}
	return false
}

func phraseKey(words []span) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = strings.ToLower(w.text)
	}
	return strings.Join(parts, " ")
}

func phraseText(words []span) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.text
	}
	return strings.Join(parts, " ")
}
