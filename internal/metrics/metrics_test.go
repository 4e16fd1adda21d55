package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInstrumentHandler_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/api/marketplace/listings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/marketplace/listings/{id}", "418"))

	req := httptest.NewRequest(http.MethodGet, "/api/marketplace/listings/abc", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/marketplace/listings/{id}", "418"))
	assert.Equal(t, before+1, after)
}

func TestPurchaseCounters(t *testing.T) {
	before := testutil.ToFloat64(purchases.WithLabelValues("GAME_ITEM", "success"))
	RecordPurchase("GAME_ITEM", "success")
	assert.Equal(t, before+1, testutil.ToFloat64(purchases.WithLabelValues("GAME_ITEM", "success")))

	feeBefore := testutil.ToFloat64(purchaseVolume.WithLabelValues("fee"))
	RecordSale(decimal.NewFromInt(100), decimal.NewFromInt(5))
	assert.Equal(t, feeBefore+5, testutil.ToFloat64(purchaseVolume.WithLabelValues("fee")))

	skippedBefore := testutil.ToFloat64(sellerCreditSkipped)
	RecordSellerCreditSkipped()
	assert.Equal(t, skippedBefore+1, testutil.ToFloat64(sellerCreditSkipped))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordPurchase("GAME_LICENSE", "conflict")

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rr.Body)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, string(body), "marketplace_purchases_total")
}
