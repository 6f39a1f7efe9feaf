package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxFragmentLength bounds any single selector fragment value.
const maxFragmentLength = 256

// identRegex matches a CSS identifier: an optional leading hyphen followed
// by a name start character and name characters. Escapes and non-ASCII
// name characters are intentionally not supported.
var identRegex = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// functionalPseudoRegex matches functional pseudo notation such as
// "nth-child(2n+1)". The argument is unvalidated beyond balance.
var functionalPseudoRegex = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*\([^()]*\)$`)

// checkFragment applies the checks shared by all fragment validators.
func checkFragment(kind, value string) error {
	if value == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", kind)
	}
	if len(value) > maxFragmentLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", kind, maxFragmentLength)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains control characters", kind)
		}
	}
	return nil
}

// ValidateIdent validates a plain CSS identifier used as an element name,
// id, or class name. The kind parameter names the fragment in error
// messages (e.g., "element", "id", "class").
func ValidateIdent(kind, value string) error {
	if err := checkFragment(kind, value); err != nil {
		return err
	}
	if !identRegex.MatchString(value) {
		return New(ErrCodeInvalidInput, "invalid %s name: %q", kind, value)
	}
	return nil
}

// ValidatePseudo validates a pseudo-class or pseudo-element name. Both
// plain identifiers ("hover") and functional notation ("nth-child(2n)")
// are accepted. The value must not carry its own colon prefix.
func ValidatePseudo(kind, value string) error {
	if err := checkFragment(kind, value); err != nil {
		return err
	}
	if strings.HasPrefix(value, ":") {
		return New(ErrCodeInvalidInput, "%s must not include the colon prefix: %q", kind, value)
	}
	if !identRegex.MatchString(value) && !functionalPseudoRegex.MatchString(value) {
		return New(ErrCodeInvalidInput, "invalid %s name: %q", kind, value)
	}
	return nil
}

// ValidateAttribute validates the body of an attribute selector (the text
// between the square brackets). The body is free-form apart from the
// brackets themselves, which would break the rendered selector.
func ValidateAttribute(value string) error {
	if err := checkFragment("attribute", value); err != nil {
		return err
	}
	if strings.ContainsAny(value, "[]") {
		return New(ErrCodeInvalidInput, "attribute must not contain square brackets: %q", value)
	}
	return nil
}

// ValidateName validates a selector name used as a manifest key.
// Names are identifiers with dots allowed as separators.
func ValidateName(name string) error {
	if err := checkFragment("name", name); err != nil {
		return err
	}
	for _, part := range strings.Split(name, ".") {
		if !identRegex.MatchString(part) {
			return New(ErrCodeInvalidManifest, "invalid selector name: %q", name)
		}
	}
	return nil
}
