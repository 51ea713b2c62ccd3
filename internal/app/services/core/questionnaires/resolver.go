package questionnaires

// OtherOption is the option value whose real answer is captured as free text.
const OtherOption = "Other"

const otherPrefix = "Other: "

// ResolveSingle substitutes the free-text override for the Other option.
// An empty override leaves the literal "Other" in place.
func ResolveSingle(value, otherText string) string {
	if value == OtherOption && otherText != "" {
		return otherPrefix + otherText
	}
	return value
}

// ResolveMulti applies ResolveSingle to every element and keeps the order.
// The result is never nil.
func ResolveMulti(values []string, otherText string) []string {
	resolved := make([]string, len(values))
	for i, value := range values {
		resolved[i] = ResolveSingle(value, otherText)
	}
	return resolved
}
