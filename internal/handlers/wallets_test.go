package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
	"github.com/sbilibin2017/gw-game-marketplace/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateWalletHandler(t *testing.T) {
	owner := testActor()

	tests := []struct {
		name               string
		actor              *policy.Actor
		requestBody        any
		setupMocks         func(m *MockWalletCreator)
		expectedStatusCode int
	}{
		{
			name:        "created",
			actor:       owner,
			requestBody: CreateWalletRequest{BlockchainID: "ethereum", Address: "0xabc", IsDefault: true},
			setupMocks: func(m *MockWalletCreator) {
				m.EXPECT().Create(gomock.Any(), *owner, services.CreateWalletInput{BlockchainID: "ethereum", Address: "0xabc", IsDefault: true}).
					Return(&models.WalletDB{WalletID: uuid.New()}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "duplicate address",
			actor:       owner,
			requestBody: CreateWalletRequest{BlockchainID: "ethereum", Address: "0xabc"},
			setupMocks: func(m *MockWalletCreator) {
				m.EXPECT().Create(gomock.Any(), *owner, gomock.Any()).Return(nil, models.ErrConflict)
			},
			expectedStatusCode: http.StatusConflict,
		},
		{
			name:               "unauthenticated",
			requestBody:        CreateWalletRequest{},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "invalid body",
			actor:              owner,
			requestBody:        "invalid-json",
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockWalletCreator(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			rr := httptest.NewRecorder()
			NewCreateWalletHandler(m).ServeHTTP(rr, newRequest(t, http.MethodPost, tt.requestBody, tt.actor, ""))
			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestListWalletsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := testActor()
	m := NewMockWalletLister(ctrl)
	m.EXPECT().List(gomock.Any(), *owner).Return([]models.WalletDB{{WalletID: uuid.New()}}, nil)

	rr := httptest.NewRecorder()
	NewListWalletsHandler(m).ServeHTTP(rr, newRequest(t, http.MethodGet, nil, owner, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	assert.Len(t, resp["data"], 1)
}

func TestSyncWalletHandler(t *testing.T) {
	actor := testActor()
	id := uuid.New()

	tests := []struct {
		name               string
		wallet             *models.WalletDB
		err                error
		expectedStatusCode int
	}{
		{"synced", &models.WalletDB{WalletID: id, Balance: decimal.NewFromInt(3)}, nil, http.StatusOK},
		{"unsupported chain", nil, services.ErrChainUnsupported, http.StatusBadRequest},
		{"not found", nil, services.ErrWalletNotFound, http.StatusNotFound},
		{"forbidden", nil, models.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockWalletSyncer(ctrl)
			m.EXPECT().Sync(gomock.Any(), *actor, id).Return(tt.wallet, tt.err)

			rr := httptest.NewRecorder()
			NewSyncWalletHandler(m).ServeHTTP(rr, newRequest(t, http.MethodPost, nil, actor, id.String()))
			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
