// Package langmeta is a read-only registry of language display names and
// language families, keyed by ISO 639-1 code. The tables are initialized at
// startup and never mutated, so lookups are safe from concurrent requests.
package langmeta

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Unknown is the sentinel code used when no backend could name a language.
const Unknown = "unknown"

var names = map[string]string{
	"af": "Afrikaans",
	"ar": "Arabic",
	"bg": "Bulgarian",
	"bn": "Bengali",
	"ca": "Catalan",
	"cs": "Czech",
	"cy": "Welsh",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"et": "Estonian",
	"fa": "Persian",
	"fi": "Finnish",
	"fr": "French",
	"gu": "Gujarati",
	"he": "Hebrew",
	"hi": "Hindi",
	"hr": "Croatian",
	"hu": "Hungarian",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"kn": "Kannada",
	"ko": "Korean",
	"lt": "Lithuanian",
	"lv": "Latvian",
	"mk": "Macedonian",
	"ml": "Malayalam",
	"mr": "Marathi",
	"ne": "Nepali",
	"nl": "Dutch",
	"no": "Norwegian",
	"pa": "Punjabi",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sk": "Slovak",
	"sl": "Slovenian",
	"so": "Somali",
	"sq": "Albanian",
	"sv": "Swedish",
	"sw": "Swahili",
	"ta": "Tamil",
	"te": "Telugu",
	"th": "Thai",
	"tl": "Tagalog",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"ur": "Urdu",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

var families = map[string]string{
	// Germanic
	"en": "Germanic",
	"de": "Germanic",
	"nl": "Germanic",
	"sv": "Germanic",
	"no": "Germanic",
	"da": "Germanic",

	// Romance
	"es": "Romance",
	"fr": "Romance",
	"it": "Romance",
	"pt": "Romance",
	"ro": "Romance",

	// Slavic
	"ru": "Slavic",
	"uk": "Slavic",
	"pl": "Slavic",
	"cs": "Slavic",
	"bg": "Slavic",

	// Indo-Aryan
	"hi": "Indo-Aryan",
	"bn": "Indo-Aryan",
	"pa": "Indo-Aryan",
	"gu": "Indo-Aryan",

	// East Asian
	"zh": "Sino-Tibetan",
	"ja": "Japonic",
	"ko": "Koreanic",

	// Others
	"ar": "Semitic",
	"he": "Semitic",
	"fi": "Uralic",
	"hu": "Uralic",
	"tr": "Turkic",
	"th": "Tai-Kadai",
	"vi": "Austroasiatic",
}

// base strips a region subtag: "zh-CN" -> "zh".
func base(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		return code[:i]
	}
	return code
}

// Name returns the English display name for an ISO 639-1 code. Codes outside
// the static table fall back to the CLDR display name; a lookup miss returns
// "Unknown (<code>)" rather than failing.
func Name(code string) string {
	b := base(code)
	if b == "" || b == Unknown {
		return "Unknown"
	}
	if name, ok := names[b]; ok {
		return name
	}
	if tag, err := language.Parse(b); err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}
	return fmt.Sprintf("Unknown (%s)", code)
}

// Family returns the language family for an ISO 639-1 code, or "Other" for
// codes outside the table.
func Family(code string) string {
	b := base(code)
	if b == "" || b == Unknown {
		return "Unknown"
	}
	if family, ok := families[b]; ok {
		return family
	}
	return "Other"
}

func IsEnglish(code string) bool {
	return base(code) == "en"
}
