package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("EN")
	assert.True(t, filter("hello"))
	for _, word := range []string{"", "résumé", "naïve", "don’t", "co-op", "Hello"} {
		assert.False(t, filter(word), "expected %q to be rejected", word)
	}
}

func TestFilterOtherLanguagesKeepLetters(t *testing.T) {
	filter := FilterForLang("de")
	for _, word := range []string{"straße", "über", "l'eau", "jean-luc"} {
		assert.True(t, filter(word), "expected %q to be kept", word)
	}
	for _, word := range []string{"", "zwei wörter", "tab\there", "42"} {
		assert.False(t, filter(word), "expected %q to be rejected", word)
	}
}
