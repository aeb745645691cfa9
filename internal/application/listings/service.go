package listings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"essenteil-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultLimit is the page size used when a search does not ask for one.
const DefaultLimit = 50

// GeoIndex is the derived geospatial projection of listings. Every error from
// it is absorbed here: the relational store alone must be able to answer.
type GeoIndex interface {
	Add(ctx context.Context, id string, lng, lat float64) error
	Radius(ctx context.Context, lat, lng, radiusKm float64) ([]string, error)
	Remove(ctx context.Context, id string) error
}

// ObjectStore deletes externally stored listing images.
type ObjectStore interface {
	DeleteObjectByURL(ctx context.Context, url string) error
}

var (
	ErrListingNotFound = errors.New("Listing not found")
	ErrNotOwner        = errors.New("Not authorized to delete this listing")
)

// Service orchestrates listing reads and writes across the relational store
// (source of truth) and the geo index (best-effort accelerator).
type Service struct {
	DB      *gorm.DB
	Geo     GeoIndex
	Storage ObjectStore
}

type CreateListingInput struct {
	UserID      string
	Title       string
	Description string
	Categories  []string
	Location    domain.Location
	Contact     domain.Contact
	ImageURL    string
	ExpiresAt   time.Time
}

// CreateListing persists a new listing and returns the full record, so the
// caller can render it without a re-fetch. If the location carries both
// coordinates the listing is also added to the geo index; a failure there is
// logged and never rolls back the row.
func (s *Service) CreateListing(ctx context.Context, in CreateListingInput) (*domain.Listing, error) {
	listing := &domain.Listing{
		ID:          uuid.New(),
		UserID:      in.UserID,
		Title:       in.Title,
		Categories:  datatypes.JSONSlice[string](in.Categories),
		Location:    datatypes.NewJSONType(in.Location),
		Contact:     datatypes.NewJSONType(in.Contact),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Active:      true,
		ExpiresAt:   in.ExpiresAt,
	}
	for _, c := range in.Categories {
		listing.CategoryRows = append(listing.CategoryRows, domain.ListingCategory{
			ListingID: listing.ID,
			Category:  c,
		})
	}

	if err := s.DB.WithContext(ctx).Create(listing).Error; err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	if s.Geo != nil && in.Location.Lat != 0 && in.Location.Lng != 0 {
		if err := s.Geo.Add(ctx, listing.ID.String(), in.Location.Lng, in.Location.Lat); err != nil {
			log.Warn().Err(err).Str("listing_id", listing.ID.String()).Msg("Failed to index listing location")
		}
	}

	return listing, nil
}

// SearchQuery filters a listing search. Lat, Lng and Radius are pointers so
// that an explicit zero is distinguishable from an absent parameter; geo
// filtering is active only when all three are set.
type SearchQuery struct {
	UserID     string
	Lat        *float64
	Lng        *float64
	Radius     *float64 // kilometers
	Categories []string
	Limit      int // DefaultLimit when <= 0
	Offset     int
}

// GetListings runs the combined query: an optional geo-radius candidate set
// intersected with the relational predicates, newest first, paginated at the
// relational layer. Only store failures propagate; a broken geo index
// degrades to an unfiltered search.
func (s *Service) GetListings(ctx context.Context, q SearchQuery) ([]domain.Listing, error) {
	var candidates []uuid.UUID
	geoFiltered := false
	if s.Geo != nil && q.Lat != nil && q.Lng != nil && q.Radius != nil {
		ids, err := s.Geo.Radius(ctx, *q.Lat, *q.Lng, *q.Radius)
		if err != nil {
			log.Warn().Err(err).Msg("Geo index unavailable, serving results without geo filter")
		} else {
			geoFiltered = true
			for _, id := range ids {
				parsed, perr := uuid.Parse(id)
				if perr != nil {
					// stale or foreign member, nothing to resolve
					continue
				}
				candidates = append(candidates, parsed)
			}
			if len(candidates) == 0 {
				return []domain.Listing{}, nil
			}
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	tx := s.DB.WithContext(ctx).Where("active = ? AND expires_at > ?", true, time.Now())
	if q.UserID != "" {
		tx = tx.Where("user_id = ?", q.UserID)
	}
	if len(q.Categories) > 0 {
		// overlap, not subset: one shared category is enough
		sub := s.DB.Model(&domain.ListingCategory{}).Select("listing_id").Where("category IN ?", q.Categories)
		tx = tx.Where("id IN (?)", sub)
	}
	if geoFiltered {
		tx = tx.Where("id IN ?", candidates)
	}

	listings := make([]domain.Listing, 0)
	if err := tx.Order("created_at DESC, id").Limit(limit).Offset(offset).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("fetch listings: %w", err)
	}
	return listings, nil
}

// DeleteListing hard-deletes a listing after checking ownership. The row is
// removed first; geo index and image cleanup follow best-effort, so a crash
// in between leaves at worst a dangling geo member that searches already
// tolerate.
func (s *Service) DeleteListing(ctx context.Context, id uuid.UUID, userID string) error {
	var listing domain.Listing
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&listing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrListingNotFound
	}
	if err != nil {
		return fmt.Errorf("fetch listing: %w", err)
	}
	if listing.UserID != userID {
		return ErrNotOwner
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&domain.ListingCategory{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Listing{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	if s.Geo != nil {
		if err := s.Geo.Remove(ctx, id.String()); err != nil {
			log.Warn().Err(err).Str("listing_id", id.String()).Msg("Failed to remove listing from geo index")
		}
	}
	if s.Storage != nil && listing.ImageURL != "" {
		if err := s.Storage.DeleteObjectByURL(ctx, listing.ImageURL); err != nil {
			log.Warn().Err(err).Str("listing_id", id.String()).Msg("Failed to delete listing image")
		}
	}
	return nil
}
