// Package util contains small internal helpers shared across packages.
package util

import "strings"

// RenderTemplate substitutes {key} placeholders in tpl with the corresponding
// values. Unknown placeholders are left untouched so authored response text
// never loses content to a missing variable.
func RenderTemplate(tpl string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(tpl, "{") {
		return tpl
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
