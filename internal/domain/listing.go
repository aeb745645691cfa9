package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Location is where a listing can be picked up. Type "exact" means precise
// geocoder coordinates; "city" means a coarse city-level default.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Type    string  `json:"type"`
	Address string  `json:"address,omitempty"`
}

// Contact is how the poster wants to be reached.
type Contact struct {
	Method string `json:"method"`
	Value  string `json:"value"`
}

// Listing is a time-limited food-sharing post. The relational row is the
// source of truth; the Redis geo entry is a derived projection of it.
type Listing struct {
	ID          uuid.UUID                    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID      string                       `gorm:"column:user_id;not null;index" json:"user_id"`
	Title       string                       `gorm:"column:title;not null" json:"title"`
	Categories  datatypes.JSONSlice[string]  `gorm:"column:categories;not null" json:"categories"`
	Location    datatypes.JSONType[Location] `gorm:"column:location;not null" json:"location"`
	Contact     datatypes.JSONType[Contact]  `gorm:"column:contact;not null" json:"contact"`
	Description string                       `gorm:"column:description" json:"description,omitempty"`
	ImageURL    string                       `gorm:"column:image_url" json:"image_url,omitempty"`
	Active      bool                         `gorm:"column:active;not null;default:true" json:"active"`
	ExpiresAt   time.Time                    `gorm:"column:expires_at;not null;index" json:"expires_at"`
	CreatedAt   time.Time                    `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt   time.Time                    `gorm:"column:updated_at" json:"updated_at"`

	// CategoryRows mirror Categories for portable overlap filtering in SQL.
	// Written and removed together with the row, never updated.
	CategoryRows []ListingCategory `gorm:"foreignKey:ListingID" json:"-"`
}

func (Listing) TableName() string {
	return "listings"
}

// BeforeCreate sets id if not already set (DBs without default uuid).
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// ListingCategory is one category tag of a listing, normalized so that
// "has at least one of the requested categories" is a plain IN subquery.
type ListingCategory struct {
	ListingID uuid.UUID `gorm:"column:listing_id;type:uuid;primaryKey" json:"listing_id"`
	Category  string    `gorm:"column:category;primaryKey" json:"category"`
}

func (ListingCategory) TableName() string {
	return "listing_categories"
}
