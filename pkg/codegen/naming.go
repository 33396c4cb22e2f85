package codegen

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var initialisms = map[string]string{
	"id":  "ID",
	"url": "URL",
	"ts":  "TS",
}

// SetterName converts a wire key such as "response_url_enabled" into the Go
// setter name "ResponseURLEnabled".
func SetterName(key string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, part := range strings.Split(key, "_") {
		if part == "" {
			continue
		}
		if upper, ok := initialisms[part]; ok {
			b.WriteString(upper)
			continue
		}
		b.WriteString(caser.String(part))
	}
	return b.String()
}
