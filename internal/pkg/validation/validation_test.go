package validation

import (
	"testing"

	"essenteil-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTitle(t *testing.T) {
	assert.True(t, IsValidTitle("Sourdough bread"))
	assert.False(t, IsValidTitle(""))
	assert.False(t, IsValidTitle("   "))
}

func TestValidCategories(t *testing.T) {
	assert.True(t, ValidCategories([]string{"Bakery"}))
	assert.True(t, ValidCategories([]string{"Bakery", "Snacks"}))
	assert.False(t, ValidCategories(nil))
	assert.False(t, ValidCategories([]string{}))
	assert.False(t, ValidCategories([]string{"Bakery", "Rocket Fuel"}))
}

func TestValidLocation(t *testing.T) {
	assert.True(t, ValidLocation(domain.Location{Lat: 52.52, Lng: 13.405, Type: "exact"}))
	assert.True(t, ValidLocation(domain.Location{Lat: 0, Lng: 0, Type: "city"}))
	assert.False(t, ValidLocation(domain.Location{Lat: 52.52, Lng: 13.405, Type: "galaxy"}))
	assert.False(t, ValidLocation(domain.Location{Lat: 91, Lng: 13.405, Type: "exact"}))
	assert.False(t, ValidLocation(domain.Location{Lat: 52.52, Lng: 181, Type: "exact"}))
}

func TestValidContact(t *testing.T) {
	assert.True(t, ValidContact(domain.Contact{Method: "email", Value: "a@b.com"}))
	assert.True(t, ValidContact(domain.Contact{Method: "phone", Value: "+49 170 1234567"}))
	assert.True(t, ValidContact(domain.Contact{Method: "whatsapp", Value: "491701234567"}))
	assert.False(t, ValidContact(domain.Contact{Method: "email", Value: "not-an-email"}))
	assert.False(t, ValidContact(domain.Contact{Method: "phone", Value: "call me"}))
	assert.False(t, ValidContact(domain.Contact{Method: "fax", Value: "12345"}))
}
