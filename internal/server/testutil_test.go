package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/melynxis/solace/internal/adapters/sqlstore"
	"github.com/melynxis/solace/internal/app"
	"github.com/melynxis/solace/internal/db"
	"github.com/melynxis/solace/internal/observability"
	"github.com/melynxis/solace/internal/server"
)

// newTestHandler wires the full stack over a fresh in-memory store.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	database, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	database.SetMaxOpenConns(1)
	if err := database.InitSchema(context.Background()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	observability.RegisterMetrics()

	logger := zerolog.Nop()
	srv := server.New(server.Deps{
		Logger:   logger,
		Spirits:  app.NewSpiritService(sqlstore.NewSpiritRepository(database), sqlstore.NewEventRepository(database), logger),
		Registry: app.NewRegistryService(sqlstore.NewRegistryRepository(database), logger),
		RBAC:     app.NewRBACService(),
		Health:   app.NewHealthService(database),
	})
	return srv.Handler()
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"requestId"`
	} `json:"meta"`
}

// doJSON issues one request against the handler and decodes the
// envelope.
func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response to %s %s is not an envelope: %v\nbody: %s", method, path, err, rec.Body.String())
	}
	return rec, env
}

// dataMap decodes the envelope payload as an object.
func dataMap(t *testing.T, env envelope) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(env.Data, &m); err != nil {
		t.Fatalf("envelope data is not an object: %v\ndata: %s", err, env.Data)
	}
	return m
}

// dataList decodes the envelope payload as an array of objects.
func dataList(t *testing.T, env envelope) []map[string]any {
	t.Helper()
	var list []map[string]any
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("envelope data is not an array: %v\ndata: %s", err, env.Data)
	}
	return list
}
