package constants

// Categories is the closed vocabulary of listing categories.
var Categories = []string{
	"Fresh Produce",
	"Dairy & Eggs",
	"Meat & Seafood",
	"Bakery",
	"Pantry Staples",
	"Beverages",
	"Snacks",
	"Frozen Foods",
	"Condiments & Sauces",
	"Spices & Herbs",
	"Prepared Meals",
	"Other",
}

// Contact methods accepted on a listing.
const (
	ContactWhatsApp = "whatsapp"
	ContactPhone    = "phone"
	ContactEmail    = "email"
)

// Location types: exact coordinates from a geocoder, or a coarse city-level default.
const (
	LocationExact = "exact"
	LocationCity  = "city"
)

// KnownCategory returns true if category is part of the closed vocabulary.
func KnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// KnownContactMethod returns true for the accepted contact methods.
func KnownContactMethod(method string) bool {
	return method == ContactWhatsApp || method == ContactPhone || method == ContactEmail
}

// KnownLocationType returns true for the accepted location types.
func KnownLocationType(t string) bool {
	return t == LocationExact || t == LocationCity
}
