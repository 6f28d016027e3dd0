//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package meteor

import (
	"strings"
	"unicode"
)

// Token is one unit of text at a fixed position in a sentence.
// Positions are 0-based and unique within the sentence.
type Token struct {
	Pos  int
	Text string
}

// Tokenizer splits sentences into tokens. Runs of letters and digits
// become word tokens; runs of any other non-space characters become
// punctuation tokens. METEOR counts every token, punctuation included,
// so nothing is filtered.
type Tokenizer struct {
	lowercase bool
}

// NewTokenizer creates a tokenizer that lowercases its output, so that
// exact matching is case-insensitive.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{lowercase: true}
}

// NewCaseSensitiveTokenizer creates a tokenizer that preserves case.
func NewCaseSensitiveTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text into tokens.
func (t *Tokenizer) Tokenize(text string) []Token {
	if t.lowercase {
		text = strings.ToLower(text)
	}

	var tokens []Token
	var current strings.Builder
	wordRun := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, Token{Pos: len(tokens), Text: current.String()})
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if !wordRun {
				flush()
			}
			wordRun = true
			current.WriteRune(r)
		default:
			if wordRun {
				flush()
			}
			wordRun = false
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}
