//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package meteor

import (
	"context"
	"testing"
)

func TestNewExactStage_RejectsBadWeight(t *testing.T) {
	for _, weight := range []float64{0, -1} {
		if _, err := NewExactStage(weight); err == nil {
			t.Errorf("expected an error for weight %g", weight)
		}
	}
}

func TestExactStage_Normalize(t *testing.T) {
	stage, err := NewExactStage(1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keys, err := stage.Normalize(context.Background(), Token{Pos: 0, Text: "cat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 1 || keys[0] != "cat" {
		t.Errorf("expected [cat], got %v", keys)
	}
}

func TestNewStemStage_RejectsUnsupportedLanguage(t *testing.T) {
	if _, err := NewStemStage(0.6, Language("german")); err == nil {
		t.Error("expected an error for a language without a stemmer")
	}
	if _, err := NewStemStage(0.6, Language("klingon")); err == nil {
		t.Error("expected an error for an unknown language")
	}
}

func TestStemStage_Normalize(t *testing.T) {
	stage, err := NewStemStage(0.6, LanguageEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		a, b     string
		sameStem bool
	}{
		{"cats", "cat", true},
		{"running", "runs", true},
		{"connection", "connected", true},
		{"cat", "dog", false},
	}

	for _, tt := range tests {
		keysA, err := stage.Normalize(context.Background(), Token{Text: tt.a})
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tt.a, err)
		}
		keysB, err := stage.Normalize(context.Background(), Token{Text: tt.b})
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tt.b, err)
		}

		if got := intersects(keysA, keysB); got != tt.sameStem {
			t.Errorf("%q and %q: stem match = %v, want %v (keys %v / %v)",
				tt.a, tt.b, got, tt.sameStem, keysA, keysB)
		}
	}
}

func TestSynonymStage_Normalize(t *testing.T) {
	provider := NewStaticSynonyms([][]string{
		{"car", "automobile"},
		{"quick", "fast", "rapid"},
	})
	stage, err := NewSynonymStage(0.8, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		a, b    string
		matches bool
	}{
		{"car", "automobile", true},
		{"quick", "rapid", true},
		{"car", "fast", false},
		// Identical unknown words still share their surface key.
		{"boat", "boat", true},
		{"boat", "ship", false},
	}

	for _, tt := range tests {
		keysA, err := stage.Normalize(context.Background(), Token{Text: tt.a})
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tt.a, err)
		}
		keysB, err := stage.Normalize(context.Background(), Token{Text: tt.b})
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tt.b, err)
		}

		if got := intersects(keysA, keysB); got != tt.matches {
			t.Errorf("%q and %q: match = %v, want %v", tt.a, tt.b, got, tt.matches)
		}
	}
}

func TestNewSynonymStage_RequiresProvider(t *testing.T) {
	if _, err := NewSynonymStage(0.8, nil); err == nil {
		t.Error("expected an error for a nil provider")
	}
}

func intersects(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, k := range a {
		set[k] = true
	}
	for _, k := range b {
		if set[k] {
			return true
		}
	}
	return false
}
