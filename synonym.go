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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SynonymProvider looks up the synonym sets a word belongs to. Words in
// the same synonym set align under a SynonymStage.
//
// Implementations must be safe for concurrent use.
type SynonymProvider interface {
	// Synsets returns identifiers of the synonym sets containing word,
	// or an empty slice when the word is unknown.
	Synsets(ctx context.Context, word string) ([]string, error)
}

// SynonymStage matches tokens that share a synonym set. A token's keys
// are its surface form plus one key per synonym set it belongs to, so
// identical words also match even when the lookup table does not know
// them.
type SynonymStage struct {
	weight   float64
	provider SynonymProvider
}

// NewSynonymStage creates a synonym-match stage backed by the given
// provider.
func NewSynonymStage(weight float64, provider SynonymProvider) (*SynonymStage, error) {
	if err := validateWeight("synonym", weight); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("synonym stage: a synonym provider is required")
	}
	return &SynonymStage{weight: weight, provider: provider}, nil
}

func (s *SynonymStage) Kind() string    { return "synonym" }
func (s *SynonymStage) Weight() float64 { return s.weight }

func (s *SynonymStage) Normalize(ctx context.Context, tok Token) ([]string, error) {
	sets, err := s.provider.Synsets(ctx, tok.Text)
	if err != nil {
		return nil, fmt.Errorf("synonym lookup %q: %w", tok.Text, err)
	}

	keys := make([]string, 0, len(sets)+1)
	keys = append(keys, tok.Text)
	for _, id := range sets {
		keys = append(keys, "synset:"+id)
	}
	return keys, nil
}

// StaticSynonyms is an in-memory synonym table.
type StaticSynonyms struct {
	synsets map[string][]string // word -> synonym set ids
}

// NewStaticSynonyms builds a synonym table from groups of synonymous
// words. Each group becomes one synonym set.
func NewStaticSynonyms(groups [][]string) *StaticSynonyms {
	synsets := make(map[string][]string)
	for i, group := range groups {
		id := fmt.Sprintf("%d", i)
		for _, word := range group {
			synsets[word] = append(synsets[word], id)
		}
	}
	return &StaticSynonyms{synsets: synsets}
}

// LoadSynonymsFile reads a YAML file containing a list of synonym
// groups, each a list of words:
//
//	- [car, automobile]
//	- [quick, fast, rapid]
func LoadSynonymsFile(path string) (*StaticSynonyms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonyms file: %w", err)
	}

	var groups [][]string
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("failed to parse synonyms file: %w", err)
	}

	return NewStaticSynonyms(groups), nil
}

// Synsets implements SynonymProvider. The table is immutable after
// construction, so concurrent lookups need no locking.
func (s *StaticSynonyms) Synsets(_ context.Context, word string) ([]string, error) {
	return s.synsets[word], nil
}
