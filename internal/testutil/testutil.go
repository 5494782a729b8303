// Package testutil holds shared helpers for wiring an in-memory database and
// the production routing inside tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tsurematsu/backendFall/internal/handlers"
	"github.com/Tsurematsu/backendFall/internal/models"
	"github.com/Tsurematsu/backendFall/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// DeleteSecret is the delete secret every test router is configured with.
const DeleteSecret = "test-secret"

// SetupTestDB opens a fresh in-memory database with the schema migrated.
// The pool is capped at one connection so every caller sees the same
// in-memory instance.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.Player{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// SetupRouter assembles the exact production routing over the given database.
func SetupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	leaderboardService := services.NewLeaderboardService(db, DeleteSecret)
	playerHandler := handlers.NewPlayerHandler(leaderboardService)
	healthHandler := handlers.NewHealthHandler(db)

	r := gin.New()
	handlers.RegisterRoutes(r, playerHandler, healthHandler)
	return r
}

// MakeRequest builds an HTTP test request with an optional JSON body.
func MakeRequest(t *testing.T, method, path string, body interface{}, headers map[string]string) *http.Request {
	t.Helper()

	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// Do runs the request through the router and returns the recorded response.
func Do(t *testing.T, r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
