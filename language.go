//-------------------------------------------------------------------------
//
// METEOR Scorer
//
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package meteor

// Language selects the stemming rules for a stem stage. The set follows
// the languages the snowball stemmer ships; exact and synonym matching
// work for any language.
type Language string

const (
	LanguageEnglish   Language = "english"
	LanguageSpanish   Language = "spanish"
	LanguageFrench    Language = "french"
	LanguageRussian   Language = "russian"
	LanguageSwedish   Language = "swedish"
	LanguageNorwegian Language = "norwegian"
	LanguageHungarian Language = "hungarian"
)

// IsValid reports whether l is a recognised stemming language.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageRussian,
		LanguageSwedish, LanguageNorwegian, LanguageHungarian:
		return true
	}
	return false
}
