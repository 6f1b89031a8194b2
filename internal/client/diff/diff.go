// Package diff computes the word-level edit description used to render an
// input item's edit history.
//
// The algorithm is a positional pairwise walk, not an LCS alignment: a
// single inserted or removed word shifts everything after it out of
// alignment and shows as a run of paired removed/added tokens. That is
// deliberate — the rendering depends on this exact, predictable output,
// so a smarter general-purpose diff library would be a behavior change.
package diff

import "unicode"

// Op classifies a token of the diff output.
type Op int

const (
	Same Op = iota
	Removed
	Added
)

func (o Op) String() string {
	switch o {
	case Same:
		return "same"
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return "unknown"
	}
}

// Token is one emitted token with its classification. Whitespace runs are
// tokens too, so concatenating by Op reconstructs the inputs exactly.
type Token struct {
	Op   Op
	Text string
}

// Words diffs two strings token by token. Pure function of its inputs.
//
// Concatenating all Same+Removed tokens yields oldText; all Same+Added
// tokens yield newText.
func Words(oldText, newText string) []Token {
	oldTokens := tokenize(oldText)
	newTokens := tokenize(newText)

	var out []Token
	i, j := 0, 0
	for i < len(oldTokens) && j < len(newTokens) {
		if oldTokens[i] == newTokens[j] {
			out = append(out, Token{Op: Same, Text: oldTokens[i]})
		} else {
			out = append(out,
				Token{Op: Removed, Text: oldTokens[i]},
				Token{Op: Added, Text: newTokens[j]},
			)
		}
		i++
		j++
	}
	for ; i < len(oldTokens); i++ {
		out = append(out, Token{Op: Removed, Text: oldTokens[i]})
	}
	for ; j < len(newTokens); j++ {
		out = append(out, Token{Op: Added, Text: newTokens[j]})
	}
	return out
}

// tokenize splits s into alternating runs of whitespace and
// non-whitespace, keeping both.
func tokenize(s string) []string {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	var tokens []string
	start := 0
	ws := unicode.IsSpace(runes[0])
	for i := 1; i < len(runes); i++ {
		cur := unicode.IsSpace(runes[i])
		if cur != ws {
			tokens = append(tokens, string(runes[start:i]))
			start = i
			ws = cur
		}
	}
	return append(tokens, string(runes[start:]))
}
