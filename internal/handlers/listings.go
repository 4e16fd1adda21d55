package handlers

//go:generate mockgen -source=listings.go -destination=listings_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
	"github.com/sbilibin2017/gw-game-marketplace/internal/services"
	"github.com/shopspring/decimal"
)

// ListingCreator creates listings.
type ListingCreator interface {
	Create(ctx context.Context, seller policy.Actor, in services.CreateListingInput) (*models.Listing, error)
}

// ListingGetter reads a single listing.
type ListingGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Listing, error)
}

// ListingLister searches listings.
type ListingLister interface {
	List(ctx context.Context, f models.ListingFilter) (*services.ListingPage, error)
}

// ListingUpdater changes a listing.
type ListingUpdater interface {
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, in services.UpdateListingInput) (*models.Listing, error)
}

// ListingDeleter withdraws a listing.
type ListingDeleter interface {
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) (*models.Listing, error)
}

// CreateListingRequest represents the JSON body for creating a listing
// swagger:model CreateListingRequest
type CreateListingRequest struct {
	// Listing type
	// required: true
	// default: GAME_LICENSE
	Type models.ListingType `json:"type"`

	// Initial status, ACTIVE or DRAFT
	// default: ACTIVE
	Status models.ListingStatus `json:"status,omitempty"`

	// Price of the listing
	// required: true
	// default: 100
	Price decimal.Decimal `json:"price" swaggertype:"string"`

	// Number of units, 1 for licenses
	// default: 1
	Quantity int `json:"quantity,omitempty"`

	// Optional expiry time
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	// Game of a GAME_LICENSE listing
	GameID *uuid.UUID `json:"gameId,omitempty" swaggertype:"string"`

	// Item of a GAME_ITEM listing
	ItemID *uuid.UUID `json:"itemId,omitempty" swaggertype:"string"`
}

// UpdateListingRequest represents the JSON body for updating a listing
// swagger:model UpdateListingRequest
type UpdateListingRequest struct {
	// New price
	Price *decimal.Decimal `json:"price,omitempty" swaggertype:"string"`

	// New quantity
	Quantity *int `json:"quantity,omitempty"`

	// New expiry time
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	// ACTIVE to publish a draft, CANCELLED to withdraw
	Status *models.ListingStatus `json:"status,omitempty"`
}

// NewCreateListingHandler returns an HTTP handler for creating a listing.
// @Summary Create listing
// @Description List a game license or item owned by the caller
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body handlers.CreateListingRequest true "Create Listing Request"
// @Success 201 {object} handlers.Response "Listing created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid listing"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /marketplace [post]
// @Security BearerAuth
func NewCreateListingHandler(svc ListingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		actor, ok := requireActor(w, r)
		if !ok {
			return
		}

		var req CreateListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(ctx).Warnw("failed to decode create listing request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		listing, err := svc.Create(ctx, actor, services.CreateListingInput{
			Type:      req.Type,
			Status:    req.Status,
			Price:     req.Price,
			Quantity:  req.Quantity,
			ExpiresAt: req.ExpiresAt,
			GameID:    req.GameID,
			ItemID:    req.ItemID,
		})
		if err != nil {
			writeServiceError(ctx, w, err, http.StatusConflict)
			return
		}

		writeData(w, http.StatusCreated, listing)
	}
}

// NewGetListingHandler returns an HTTP handler for reading a listing.
// @Summary Get listing
// @Description Returns a listing with its effective status
// @Tags marketplace
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} handlers.Response "Listing"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /marketplace/listings/{id} [get]
func NewGetListingHandler(svc ListingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		listing, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(r.Context(), w, err, http.StatusConflict)
			return
		}

		writeData(w, http.StatusOK, listing)
	}
}

// NewListListingsHandler returns an HTTP handler for searching listings.
// @Summary List listings
// @Description Paginated listing search
// @Tags marketplace
// @Produce json
// @Param type query string false "Listing type"
// @Param status query string false "Effective status"
// @Param sellerId query string false "Seller ID"
// @Param gameId query string false "Game ID"
// @Param itemId query string false "Item ID"
// @Param minPrice query string false "Minimum price"
// @Param maxPrice query string false "Maximum price"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {object} handlers.Response "Listing page"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Router /marketplace/listings [get]
func NewListListingsHandler(svc ListingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListingFilter(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		page, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(r.Context(), w, err, http.StatusConflict)
			return
		}

		writeData(w, http.StatusOK, page)
	}
}

// NewUpdateListingHandler returns an HTTP handler for updating a listing.
// @Summary Update listing
// @Description Change price, quantity, expiry or status of a listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body handlers.UpdateListingRequest true "Update Listing Request"
// @Success 200 {object} handlers.Response "Updated listing"
// @Failure 400 {object} handlers.ErrorResponse "Invalid update"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Failure 409 {object} handlers.ErrorResponse "Listing can no longer be changed"
// @Router /marketplace/listings/{id} [patch]
// @Security BearerAuth
func NewUpdateListingHandler(svc ListingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		actor, ok := requireActor(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req UpdateListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(ctx).Warnw("failed to decode update listing request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		listing, err := svc.Update(ctx, actor, id, services.UpdateListingInput{
			Price:     req.Price,
			Quantity:  req.Quantity,
			ExpiresAt: req.ExpiresAt,
			Status:    req.Status,
		})
		if err != nil {
			writeServiceError(ctx, w, err, http.StatusConflict)
			return
		}

		writeData(w, http.StatusOK, listing)
	}
}

// NewDeleteListingHandler returns an HTTP handler for withdrawing a listing.
// @Summary Delete listing
// @Description Removes a draft or cancels an active listing
// @Tags marketplace
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} handlers.Response "Withdrawn listing"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Failure 409 {object} handlers.ErrorResponse "Listing can no longer be changed"
// @Router /marketplace/listings/{id} [delete]
// @Security BearerAuth
func NewDeleteListingHandler(svc ListingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		listing, err := svc.Delete(r.Context(), actor, id)
		if err != nil {
			writeServiceError(r.Context(), w, err, http.StatusConflict)
			return
		}

		writeData(w, http.StatusOK, listing)
	}
}

func parseListingFilter(q url.Values) (models.ListingFilter, error) {
	var f models.ListingFilter

	if v := q.Get("type"); v != "" {
		t := models.ListingType(v)
		if !t.Valid() {
			return f, errors.New("invalid type")
		}
		f.Type = &t
	}
	if v := q.Get("status"); v != "" {
		s := models.ListingStatus(v)
		if !s.Valid() {
			return f, errors.New("invalid status")
		}
		f.Status = &s
	}

	ids := map[string]**uuid.UUID{
		"sellerId": &f.SellerID,
		"gameId":   &f.GameID,
		"itemId":   &f.ItemID,
	}
	for name, dst := range ids {
		v := q.Get(name)
		if v == "" {
			continue
		}
		id, err := uuid.Parse(v)
		if err != nil {
			return f, errors.New("invalid " + name)
		}
		*dst = &id
	}

	prices := map[string]**decimal.Decimal{
		"minPrice": &f.MinPrice,
		"maxPrice": &f.MaxPrice,
	}
	for name, dst := range prices {
		v := q.Get(name)
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return f, errors.New("invalid " + name)
		}
		*dst = &d
	}

	ints := map[string]*int{
		"page":  &f.Page,
		"limit": &f.Limit,
	}
	for name, dst := range ints {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, errors.New("invalid " + name)
		}
		*dst = n
	}

	return f, nil
}
