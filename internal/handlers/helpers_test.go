package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request with an optional JSON body, actor and {id}
// URL parameter.
func newRequest(t *testing.T, method string, body any, actor *policy.Actor, id string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, "/", &buf)
	ctx := req.Context()
	if actor != nil {
		ctx = policy.WithActor(ctx, *actor)
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func testActor() *policy.Actor {
	return &policy.Actor{UserID: uuid.New(), Role: policy.RoleUser}
}
