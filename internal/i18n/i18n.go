// Package i18n provides the supported display locales, their message
// templates and the persisted language preference.
//
// A Locale is always passed explicitly to whatever formats text; there is no
// process-wide current language.
package i18n

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported display language.
type Locale string

const (
	English    Locale = "en"
	Indonesian Locale = "id"
)

// Default is used when no valid preference is stored.
const Default = Indonesian

// Supported lists the locales in matcher preference order.
var Supported = []Locale{Indonesian, English}

var matcher = language.NewMatcher([]language.Tag{language.Indonesian, language.English})

// Parse validates s as a supported locale.
func Parse(s string) (Locale, bool) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case English, Indonesian:
		return l, true
	}
	return "", false
}

// ParseOr returns the locale for s or fallback when s is unsupported.
func ParseOr(s string, fallback Locale) Locale {
	if l, ok := Parse(s); ok {
		return l
	}
	return fallback
}

// Match picks the best supported locale for an Accept-Language header
// value, falling back to Default.
func Match(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Valid reports whether l is supported.
func (l Locale) Valid() bool {
	_, ok := Parse(string(l))
	return ok
}

// String returns the locale code.
func (l Locale) String() string {
	return string(l)
}

// T formats the message for key in locale l, substituting {name}
// placeholders from vars. Unknown keys format as the key itself, unknown
// locales use Default.
func T(l Locale, key string, vars map[string]any) string {
	msgs, ok := catalog[l]
	if !ok {
		msgs = catalog[Default]
	}
	msg, ok := msgs[key]
	if !ok {
		return key
	}
	for name, v := range vars {
		msg = strings.ReplaceAll(msg, "{"+name+"}", format(v))
	}
	return msg
}

// Messages returns a copy of every message for locale l.
func Messages(l Locale) map[string]string {
	msgs, ok := catalog[l]
	if !ok {
		msgs = catalog[Default]
	}
	out := make(map[string]string, len(msgs))
	for k, v := range msgs {
		out[k] = v
	}
	return out
}

func format(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case int:
		return strconv.Itoa(n)
	}
	return fmt.Sprint(v)
}
