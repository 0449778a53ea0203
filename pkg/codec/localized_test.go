package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLocale_StringAndTag(t *testing.T) {
	assert.Equal(t, "enGB", LocaleEnGB.String())
	assert.Equal(t, "esMX", LocaleEsMX.String())
	assert.Equal(t, "unknown15", LocaleUnknown15.String())
	assert.Equal(t, "Locale(16)", Locale(16).String())

	assert.Equal(t, language.BritishEnglish, LocaleEnGB.Tag())
	assert.Equal(t, language.German, LocaleDeDE.Tag())
	assert.Equal(t, "es-MX", LocaleEsMX.Tag().String())
	assert.Equal(t, language.Und, LocaleUnknown12.Tag())
	assert.Equal(t, language.Und, Locale(-1).Tag())
}

func TestLocalizedString_GetSet(t *testing.T) {
	var s LocalizedString

	assert.True(t, s.Set(LocaleFrFR, "Commun"))
	assert.False(t, s.Set(LocaleRuRU, "Всеобщий"))
	assert.False(t, s.Set(Locale(-1), "x"))

	assert.Equal(t, "Commun", s.Get(LocaleFrFR))
	assert.Equal(t, "", s.Get(LocaleRuRU))
	assert.Equal(t, "Commun", s.Values[LocaleFrFR])

	var ext ExtendedLocalizedString
	assert.True(t, ext.Set(LocaleRuRU, "Всеобщий"))
	assert.False(t, ext.Set(Locale(ExtendedLocaleCount), "x"))
	assert.Equal(t, "Всеобщий", ext.Get(LocaleRuRU))
}

func TestLocalizedString_Lookup(t *testing.T) {
	var s LocalizedString
	s.Set(LocaleEnGB, "Common")
	s.Set(LocaleDeDE, "Gemeinsprache")
	s.Set(LocaleEsES, "Común")

	assert.Equal(t, "Gemeinsprache", s.Lookup(language.German))
	assert.Equal(t, "Gemeinsprache", s.Lookup(language.MustParse("de-AT")))
	assert.Equal(t, "Común", s.Lookup(language.MustParse("es-ES")))
	assert.Equal(t, "Common", s.Lookup(language.AmericanEnglish))
	assert.Equal(t, "Common", s.Lookup(language.Korean))

	var empty LocalizedString
	assert.Equal(t, "", empty.Lookup(language.German))
}

func TestExtendedLocalizedString_Lookup(t *testing.T) {
	var s ExtendedLocalizedString
	s.Set(LocaleEnGB, "Common")
	s.Set(LocaleRuRU, "Всеобщий")
	s.Set(LocaleUnknown13, "ignored by matching")

	assert.Equal(t, "Всеобщий", s.Lookup(language.Russian))
	assert.Equal(t, "Common", s.Lookup(language.Japanese))
}

func TestLocalizedString_StringBlockSize(t *testing.T) {
	var s LocalizedString
	assert.Equal(t, uint32(0), s.StringBlockSize())

	s.Set(LocaleEnGB, "Foo")
	s.Set(LocaleKoKR, "Foo")
	s.Set(LocaleDeDE, "Gemein")
	assert.Equal(t, uint32(4+4+7), s.StringBlockSize())

	var ext ExtendedLocalizedString
	ext.Set(LocaleItIT, "Comune")
	assert.Equal(t, uint32(7), ext.StringBlockSize())

	// the cache deduplicates, so it never needs more than the estimate
	c := NewStringCache()
	for _, v := range s.Values {
		c.Add(v)
	}
	assert.LessOrEqual(t, c.Size()-1, s.StringBlockSize())
}

func TestLocalizedString_ReadOnInterfaceValue(t *testing.T) {
	var s LocalizedString
	s.Set(LocaleFrFR, "Commun")
	var ext ExtendedLocalizedString
	ext.Set(LocaleRuRU, "Всеобщий")

	values := []any{s, ext}
	assert.Equal(t, "Commun", values[0].(LocalizedString).Get(LocaleFrFR))
	assert.Equal(t, "Commun", values[0].(LocalizedString).Lookup(language.French))
	assert.Equal(t, uint32(7), values[0].(LocalizedString).StringBlockSize())
	assert.Equal(t, "Всеобщий", values[1].(ExtendedLocalizedString).Get(LocaleRuRU))
}
