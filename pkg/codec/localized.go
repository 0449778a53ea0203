package codec

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale is a string slot in a localized string field.
type Locale int

const (
	LocaleEnGB Locale = iota
	LocaleKoKR
	LocaleFrFR
	LocaleDeDE
	LocaleEnCN
	LocaleEnTW
	LocaleEsES
	LocaleEsMX
	LocaleRuRU
	LocaleJaJP
	LocalePtPT
	LocaleItIT
	LocaleUnknown12
	LocaleUnknown13
	LocaleUnknown14
	LocaleUnknown15
)

const (
	// LocaleCount is the number of slots in a LocalizedString.
	LocaleCount = 8
	// ExtendedLocaleCount is the number of slots in an ExtendedLocalizedString.
	ExtendedLocaleCount = 16
)

var localeNames = [ExtendedLocaleCount]string{
	"enGB", "koKR", "frFR", "deDE", "enCN", "enTW", "esES", "esMX",
	"ruRU", "jaJP", "ptPT", "itIT", "unknown12", "unknown13", "unknown14", "unknown15",
}

var localeTags = [ExtendedLocaleCount]language.Tag{
	language.BritishEnglish,
	language.Korean,
	language.French,
	language.German,
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.EuropeanSpanish,
	language.MustParse("es-MX"),
	language.Russian,
	language.Japanese,
	language.EuropeanPortuguese,
	language.Italian,
	language.Und,
	language.Und,
	language.Und,
	language.Und,
}

func (l Locale) String() string {
	if l < 0 || int(l) >= ExtendedLocaleCount {
		return fmt.Sprintf("Locale(%d)", int(l))
	}
	return localeNames[l]
}

// Tag returns the BCP 47 tag for the slot. Unknown slots return language.Und.
func (l Locale) Tag() language.Tag {
	if l < 0 || int(l) >= ExtendedLocaleCount {
		return language.Und
	}
	return localeTags[l]
}

// LocalizedString is the 8-locale string field: eight string block offsets
// followed by a flags word.
type LocalizedString struct {
	Values [LocaleCount]string
	Flags  uint32
}

// Get returns the string for l, or "" when l has no slot in this variant.
func (s LocalizedString) Get(l Locale) string {
	if l < 0 || int(l) >= LocaleCount {
		return ""
	}
	return s.Values[l]
}

// Set stores v in slot l. It reports false when l has no slot in this variant.
func (s *LocalizedString) Set(l Locale, v string) bool {
	if l < 0 || int(l) >= LocaleCount {
		return false
	}
	s.Values[l] = v
	return true
}

// Lookup returns the populated slot that best matches tag, or slot 0.
func (s LocalizedString) Lookup(tag language.Tag) string {
	return lookupLocalized(s.Values[:], tag)
}

// StringBlockSize is the number of pool bytes the strings take when each
// non-empty one is stored once, without deduplication.
func (s LocalizedString) StringBlockSize() uint32 {
	return localizedBlockSize(s.Values[:])
}

// ExtendedLocalizedString is the 16-locale string field used by later
// client versions: sixteen string block offsets followed by a flags word.
type ExtendedLocalizedString struct {
	Values [ExtendedLocaleCount]string
	Flags  uint32
}

// Get returns the string for l, or "" for an invalid locale.
func (s ExtendedLocalizedString) Get(l Locale) string {
	if l < 0 || int(l) >= ExtendedLocaleCount {
		return ""
	}
	return s.Values[l]
}

// Set stores v in slot l. It reports false for an invalid locale.
func (s *ExtendedLocalizedString) Set(l Locale, v string) bool {
	if l < 0 || int(l) >= ExtendedLocaleCount {
		return false
	}
	s.Values[l] = v
	return true
}

// Lookup returns the populated slot that best matches tag, or slot 0.
func (s ExtendedLocalizedString) Lookup(tag language.Tag) string {
	return lookupLocalized(s.Values[:], tag)
}

// StringBlockSize is the number of pool bytes the strings take when each
// non-empty one is stored once, without deduplication.
func (s ExtendedLocalizedString) StringBlockSize() uint32 {
	return localizedBlockSize(s.Values[:])
}

func localizedBlockSize(values []string) uint32 {
	var n uint32
	for _, v := range values {
		if v != "" {
			n += uint32(len(v)) + 1
		}
	}
	return n
}

func lookupLocalized(values []string, tag language.Tag) string {
	var (
		tags  []language.Tag
		slots []int
	)
	for i, v := range values {
		if v == "" || localeTags[i] == language.Und {
			continue
		}
		tags = append(tags, localeTags[i])
		slots = append(slots, i)
	}
	if len(tags) == 0 {
		return values[0]
	}

	_, idx, conf := language.NewMatcher(tags).Match(tag)
	if conf == language.No {
		return values[0]
	}
	return values[slots[idx]]
}
