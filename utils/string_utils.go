package utils

import "strings"

// MatchesProductName matches search against a product's names: case-sensitive
// substring on the Hindi name, case-insensitive substring on the English one.
func MatchesProductName(search, nameHindi, nameEnglish string) bool {
	if strings.Contains(nameHindi, search) {
		return true
	}
	return strings.Contains(strings.ToLower(nameEnglish), strings.ToLower(search))
}
