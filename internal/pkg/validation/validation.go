package validation

import (
	"regexp"
	"strings"

	"essenteil-backend/internal/constants"
	"essenteil-backend/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Phone numbers (also WhatsApp): optional +, digits, spaces, dashes.
var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-]{4,}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidTitle requires non-blank text.
func IsValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

// ValidCategories checks the set is non-empty and every tag is part of the
// closed vocabulary.
func ValidCategories(categories []string) bool {
	if len(categories) == 0 {
		return false
	}
	for _, c := range categories {
		if !constants.KnownCategory(c) {
			return false
		}
	}
	return true
}

// ValidLocation checks the location type and coordinate ranges.
func ValidLocation(loc domain.Location) bool {
	if !constants.KnownLocationType(loc.Type) {
		return false
	}
	return loc.Lat >= -90 && loc.Lat <= 90 && loc.Lng >= -180 && loc.Lng <= 180
}

// ValidContact checks the contact method and that the value fits it.
func ValidContact(contact domain.Contact) bool {
	if !constants.KnownContactMethod(contact.Method) {
		return false
	}
	switch contact.Method {
	case constants.ContactEmail:
		return IsValidEmail(contact.Value)
	default:
		return phoneRe.MatchString(strings.TrimSpace(contact.Value))
	}
}
