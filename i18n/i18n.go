// Package i18n holds the two site languages and their locale tables.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"

	Default = English
)

// Supported lists the site languages in fallback order.
var Supported = []Lang{English, Arabic}

//go:embed locales/*.yaml
var localeFS embed.FS

type locale struct {
	Dir         string            `yaml:"dir"`
	Months      []string          `yaml:"months"`
	MonthsShort []string          `yaml:"months_short"`
	States      map[string]string `yaml:"states"`
	Messages    map[string]string `yaml:"messages"`
}

var locales = map[Lang]*locale{}

func init() {
	for _, lang := range Supported {
		data, err := localeFS.ReadFile("locales/" + string(lang) + ".yaml")
		if err != nil {
			panic(fmt.Sprintf("i18n: missing locale %s: %v", lang, err))
		}
		var loc locale
		if err := yaml.Unmarshal(data, &loc); err != nil {
			panic(fmt.Sprintf("i18n: invalid locale %s: %v", lang, err))
		}
		if len(loc.Months) != 12 || len(loc.MonthsShort) != 12 {
			panic(fmt.Sprintf("i18n: locale %s must name 12 months", lang))
		}
		locales[lang] = &loc
	}
}

// Parse accepts "en" or "ar" in any case, with an optional region suffix.
func Parse(s string) (Lang, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch Lang(s) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	}
	return "", false
}

// Resolve returns the first supported language among candidates, or Default.
func Resolve(candidates ...string) Lang {
	for _, c := range candidates {
		if lang, ok := Parse(c); ok {
			return lang
		}
	}
	return Default
}

func (l Lang) String() string { return string(l) }

func (l Lang) IsRTL() bool { return l == Arabic }

// Dir is the text direction for the language, "rtl" or "ltr".
func (l Lang) Dir() string {
	return l.locale().Dir
}

func (l Lang) locale() *locale {
	if loc, ok := locales[l]; ok {
		return loc
	}
	return locales[Default]
}

// Pick returns the value for the language, falling back to the other one when
// the preferred translation is blank.
func (l Lang) Pick(en, ar string) string {
	first, second := en, ar
	if l == Arabic {
		first, second = ar, en
	}
	if strings.TrimSpace(first) != "" {
		return first
	}
	return second
}

// MonthNames returns the twelve month names, January first.
func (l Lang) MonthNames() []string {
	return append([]string(nil), l.locale().Months...)
}

// MonthShortNames returns the abbreviated month names, January first.
func (l Lang) MonthShortNames() []string {
	return append([]string(nil), l.locale().MonthsShort...)
}

// StateLabel is the human label for a seasonality display state.
func (l Lang) StateLabel(state string) string {
	if label, ok := l.locale().States[state]; ok {
		return label
	}
	return state
}

// T looks up a message and substitutes {name} placeholders from args, given
// as alternating key/value pairs. Unknown keys fall back to English, then to
// the key itself.
func (l Lang) T(key string, args ...string) string {
	msg, ok := l.locale().Messages[key]
	if !ok {
		if msg, ok = locales[Default].Messages[key]; !ok {
			msg = key
		}
	}
	for i := 0; i+1 < len(args); i += 2 {
		msg = strings.ReplaceAll(msg, "{"+args[i]+"}", args[i+1])
	}
	return msg
}
