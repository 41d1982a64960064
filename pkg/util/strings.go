package util

// Pluralise returns "s" when count calls for a plural noun.
func Pluralise(count int) string {
	if count == 1 {
		return ""
	}

	return "s"
}
