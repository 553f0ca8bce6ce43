// Package display centralises presentation defaults for optional fields.
package display

import "strings"

// Placeholder is the default stand-in for absent values.
const Placeholder = "—"

// Or returns value unless it is blank, in which case fallback is returned.
func Or(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// OrDash returns value or the standard placeholder when blank.
func OrDash(value string) string {
	return Or(value, Placeholder)
}
