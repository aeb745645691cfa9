package listings

import (
	"errors"
	"strconv"
	"strings"
	"time"

	listsvc "essenteil-backend/internal/application/listings"
	"essenteil-backend/internal/domain"
	"essenteil-backend/internal/pkg/response"
	"essenteil-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// defaultListingTTL is applied when a new listing has no expiry.
const defaultListingTTL = 7 * 24 * time.Hour

type Handlers struct {
	Service *listsvc.Service
}

type createListingRequest struct {
	Title       string          `json:"title"`
	UserID      string          `json:"user_id"`
	Description string          `json:"description"`
	Categories  []string        `json:"categories"`
	Location    domain.Location `json:"location"`
	Contact     domain.Contact  `json:"contact"`
	ImageURL    string          `json:"image_url"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// GET /listings?user_id&lat&lng&radius&limit&offset&categories — { listings }
// Geo filtering is active only when lat, lng and radius are all present;
// radius=0 is a valid zero-radius search, not "no filter".
func (h *Handlers) GetListings(c *fiber.Ctx) error {
	q := listsvc.SearchQuery{UserID: c.Query("user_id")}

	var err error
	if q.Lat, err = optionalFloat(c, "lat"); err != nil {
		return response.Error(c, "Invalid lat parameter", fiber.StatusBadRequest)
	}
	if q.Lng, err = optionalFloat(c, "lng"); err != nil {
		return response.Error(c, "Invalid lng parameter", fiber.StatusBadRequest)
	}
	if q.Radius, err = optionalFloat(c, "radius"); err != nil {
		return response.Error(c, "Invalid radius parameter", fiber.StatusBadRequest)
	}
	if q.Radius != nil && *q.Radius < 0 {
		return response.Error(c, "Invalid radius parameter", fiber.StatusBadRequest)
	}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return response.Error(c, "Invalid limit parameter", fiber.StatusBadRequest)
		}
		q.Limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return response.Error(c, "Invalid offset parameter", fiber.StatusBadRequest)
		}
		q.Offset = n
	}

	if raw := c.Query("categories"); raw != "" {
		for _, cat := range strings.Split(raw, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				q.Categories = append(q.Categories, cat)
			}
		}
	}

	listings, err := h.Service.GetListings(c.Context(), q)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch listings")
		return response.Error(c, "Failed to fetch listings", fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"listings": listings})
}

// POST /listings — 201 with { listing }, the fully persisted record.
func (h *Handlers) CreateListing(c *fiber.Ctx) error {
	var body createListingRequest
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	if !validation.IsValidTitle(body.Title) {
		return response.Error(c, "Missing required field: title", fiber.StatusBadRequest)
	}
	if body.UserID == "" {
		return response.Error(c, "Missing required field: user_id", fiber.StatusBadRequest)
	}
	if !validation.ValidCategories(body.Categories) {
		return response.Error(c, "Invalid or missing categories", fiber.StatusBadRequest)
	}
	if !validation.ValidLocation(body.Location) {
		return response.Error(c, "Invalid or missing location", fiber.StatusBadRequest)
	}
	if !validation.ValidContact(body.Contact) {
		return response.Error(c, "Invalid or missing contact", fiber.StatusBadRequest)
	}

	expiresAt := body.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(defaultListingTTL)
	} else if !expiresAt.After(time.Now()) {
		return response.Error(c, "expires_at must be in the future", fiber.StatusBadRequest)
	}

	listing, err := h.Service.CreateListing(c.Context(), listsvc.CreateListingInput{
		UserID:      body.UserID,
		Title:       strings.TrimSpace(body.Title),
		Description: body.Description,
		Categories:  body.Categories,
		Location:    body.Location,
		Contact:     body.Contact,
		ImageURL:    body.ImageURL,
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create listing")
		return response.Error(c, "Failed to create listing", fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"listing": listing})
}

// DELETE /listings?id&userId — { message } on success; 400/403/404/500 with { error }.
func (h *Handlers) DeleteListing(c *fiber.Ctx) error {
	idStr := c.Query("id")
	userID := c.Query("userId")
	if idStr == "" || userID == "" {
		return response.Error(c, "Missing required parameters: id and userId", fiber.StatusBadRequest)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return response.Error(c, "Invalid id format", fiber.StatusBadRequest)
	}

	if err := h.Service.DeleteListing(c.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, listsvc.ErrListingNotFound):
			return response.Error(c, err.Error(), fiber.StatusNotFound)
		case errors.Is(err, listsvc.ErrNotOwner):
			return response.Error(c, err.Error(), fiber.StatusForbidden)
		default:
			log.Error().Err(err).Str("listing_id", idStr).Msg("Failed to delete listing")
			return response.Error(c, "Failed to delete listing", fiber.StatusInternalServerError)
		}
	}
	return response.Message(c, "Listing deleted successfully")
}

// optionalFloat parses a query parameter that may legitimately be absent.
// Absence and zero are different things here.
func optionalFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
