package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
	"github.com/sbilibin2017/gw-game-marketplace/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateListingHandler(t *testing.T) {
	seller := testActor()
	gameID := uuid.New()

	tests := []struct {
		name               string
		actor              *policy.Actor
		requestBody        any
		setupMocks         func(m *MockListingCreator)
		expectedStatusCode int
	}{
		{
			name:        "created",
			actor:       seller,
			requestBody: `{"type":"GAME_LICENSE","price":"19.99","gameId":"` + gameID.String() + `"}`,
			setupMocks: func(m *MockListingCreator) {
				m.EXPECT().Create(gomock.Any(), *seller, gomock.Any()).
					DoAndReturn(func(_ any, _ policy.Actor, in services.CreateListingInput) (*models.Listing, error) {
						assert.Equal(t, models.ListingTypeGameLicense, in.Type)
						assert.True(t, in.Price.Equal(decimal.RequireFromString("19.99")))
						assert.Equal(t, gameID, *in.GameID)
						return &models.Listing{ID: uuid.New(), Status: models.ListingStatusActive}, nil
					})
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "unauthenticated",
			requestBody:        `{}`,
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "invalid body",
			actor:              seller,
			requestBody:        "invalid-json",
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "validation error",
			actor:       seller,
			requestBody: `{"type":"BUNDLE","price":1}`,
			setupMocks: func(m *MockListingCreator) {
				m.EXPECT().Create(gomock.Any(), *seller, gomock.Any()).Return(nil, services.ErrUnsupportedListingType)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockListingCreator(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			rr := httptest.NewRecorder()
			NewCreateListingHandler(m).ServeHTTP(rr, newRequest(t, http.MethodPost, tt.requestBody, tt.actor, ""))
			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestGetListingHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name               string
		id                 string
		setupMocks         func(m *MockListingGetter)
		expectedStatusCode int
	}{
		{
			name: "found",
			id:   id.String(),
			setupMocks: func(m *MockListingGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(&models.Listing{ID: id}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   id.String(),
			setupMocks: func(m *MockListingGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrListingNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "invalid id",
			id:                 "abc",
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockListingGetter(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			rr := httptest.NewRecorder()
			NewGetListingHandler(m).ServeHTTP(rr, newRequest(t, http.MethodGet, nil, nil, tt.id))
			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestListListingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sellerID := uuid.New()
	m := NewMockListingLister(ctrl)
	m.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, f models.ListingFilter) (*services.ListingPage, error) {
			assert.Equal(t, models.ListingTypeGameItem, *f.Type)
			assert.Equal(t, sellerID, *f.SellerID)
			assert.True(t, f.MinPrice.Equal(decimal.NewFromInt(5)))
			assert.Equal(t, 2, f.Page)
			assert.Equal(t, 10, f.Limit)
			return &services.ListingPage{Listings: []models.Listing{}, Page: 2, Limit: 10}, nil
		})

	q := url.Values{}
	q.Set("type", "GAME_ITEM")
	q.Set("sellerId", sellerID.String())
	q.Set("minPrice", "5")
	q.Set("page", "2")
	q.Set("limit", "10")

	req := httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil)
	rr := httptest.NewRecorder()
	NewListListingsHandler(m).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	assert.Equal(t, true, resp["success"])
}

func TestParseListingFilter_Invalid(t *testing.T) {
	for _, q := range []string{"type=SKIN", "status=GONE", "gameId=x", "maxPrice=cheap", "page=0", "limit=-1"} {
		t.Run(q, func(t *testing.T) {
			values, err := url.ParseQuery(q)
			require.NoError(t, err)
			_, err = parseListingFilter(values)
			assert.Error(t, err)
		})
	}
}

func TestUpdateListingHandler(t *testing.T) {
	actor := testActor()
	id := uuid.New()

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(m *MockListingUpdater)
		expectedStatusCode int
	}{
		{
			name:        "updated",
			requestBody: `{"price":"25","status":"ACTIVE"}`,
			setupMocks: func(m *MockListingUpdater) {
				m.EXPECT().Update(gomock.Any(), *actor, id, gomock.Any()).
					DoAndReturn(func(_ any, _ policy.Actor, _ uuid.UUID, in services.UpdateListingInput) (*models.Listing, error) {
						assert.True(t, in.Price.Equal(decimal.NewFromInt(25)))
						assert.Equal(t, models.ListingStatusActive, *in.Status)
						assert.Nil(t, in.Quantity)
						return &models.Listing{ID: id}, nil
					})
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:        "forbidden",
			requestBody: `{"price":"25"}`,
			setupMocks: func(m *MockListingUpdater) {
				m.EXPECT().Update(gomock.Any(), *actor, id, gomock.Any()).Return(nil, models.ErrForbidden)
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:        "terminal listing",
			requestBody: `{"price":"25"}`,
			setupMocks: func(m *MockListingUpdater) {
				m.EXPECT().Update(gomock.Any(), *actor, id, gomock.Any()).Return(nil, services.ErrListingTerminal)
			},
			expectedStatusCode: http.StatusConflict,
		},
		{
			name:               "invalid body",
			requestBody:        "{",
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockListingUpdater(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			rr := httptest.NewRecorder()
			NewUpdateListingHandler(m).ServeHTTP(rr, newRequest(t, http.MethodPatch, tt.requestBody, actor, id.String()))
			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestDeleteListingHandler(t *testing.T) {
	actor := testActor()
	id := uuid.New()

	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
	}{
		{"cancelled", nil, http.StatusOK},
		{"forbidden", models.ErrForbidden, http.StatusForbidden},
		{"not found", services.ErrListingNotFound, http.StatusNotFound},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var listing *models.Listing
			if tt.err == nil {
				listing = &models.Listing{ID: id, Status: models.ListingStatusCancelled}
			}
			m := NewMockListingDeleter(ctrl)
			m.EXPECT().Delete(gomock.Any(), *actor, id).Return(listing, tt.err)

			rr := httptest.NewRecorder()
			NewDeleteListingHandler(m).ServeHTTP(rr, newRequest(t, http.MethodDelete, nil, actor, id.String()))
			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
