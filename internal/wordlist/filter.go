package wordlist

import (
	"strings"
	"unicode"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

var langFilters = map[string]FilterFunc{
	"en": onlyRunes(func(r rune) bool { return r >= 'a' && r <= 'z' }),
}

// FilterForLang returns the filter applied to lowercased words of lang.
// Words may never contain whitespace since space submits a word.
func FilterForLang(lang string) FilterFunc {
	if f, ok := langFilters[strings.ToLower(lang)]; ok {
		return f
	}
	return onlyRunes(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsMark(r) || r == '\'' || r == '-'
	})
}

func onlyRunes(keep func(rune) bool) FilterFunc {
	return func(word string) bool {
		return word != "" && strings.IndexFunc(word, func(r rune) bool { return !keep(r) }) < 0
	}
}
