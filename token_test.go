//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package meteor

import (
	"testing"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tok := NewTokenizer()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t  ", nil},
		{"simple words", "the cat sat", []string{"the", "cat", "sat"}},
		{"lowercasing", "The Cat SAT", []string{"the", "cat", "sat"}},
		{
			"trailing punctuation is its own token",
			"Die Katze sitzt auf der Matte.",
			[]string{"die", "katze", "sitzt", "auf", "der", "matte", "."},
		},
		{"apostrophe splits", "don't", []string{"don", "'", "t"}},
		{"digits", "route 66", []string{"route", "66"}},
		{"punctuation run stays together", "wait... what", []string{"wait", "...", "what"}},
		{"unicode words", "über café", []string{"über", "café"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i, token := range got {
				if token.Text != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, token.Text, tt.want[i])
				}
				if token.Pos != i {
					t.Errorf("token %d has position %d", i, token.Pos)
				}
			}
		})
	}
}

func TestTokenizer_CaseSensitive(t *testing.T) {
	tok := NewCaseSensitiveTokenizer()

	got := tok.Tokenize("The Cat")
	if len(got) != 2 || got[0].Text != "The" || got[1].Text != "Cat" {
		t.Errorf("expected case preserved, got %v", got)
	}
}
