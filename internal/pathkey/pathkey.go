// Package pathkey provides suffix-path derivation for parameter names.
package pathkey

import "strings"

// StripBase removes base from the front of name. Only a true prefix is
// removed; a recurrence of the base string deeper in the name is left
// intact. Names that do not start with base are returned unchanged.
func StripBase(name, base string) string {
	return strings.TrimPrefix(name, base)
}

// TrimLeading removes any leading separators from key.
func TrimLeading(key, sep string) string {
	for strings.HasPrefix(key, sep) {
		key = key[len(sep):]
	}
	return key
}

// Split breaks a suffix path into its segments. The result is never empty;
// an empty key yields a single empty segment.
func Split(key, sep string) []string {
	return strings.Split(key, sep)
}
