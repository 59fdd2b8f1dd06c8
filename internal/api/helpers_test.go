package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tapgas/internal/api"
	"tapgas/internal/config"
	dbutil "tapgas/internal/db"
	"tapgas/internal/domain"
	"tapgas/internal/middleware"
	"tapgas/internal/notify"
	"tapgas/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServer bundles everything a handler test needs
type testServer struct {
	router   *gin.Engine
	db       *gorm.DB
	sessions session.Store
}

// newTestServer assembles the real router over an in-memory database and an
// in-memory session store
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// A pooled connection would see its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, dbutil.AutoMigrate(db))

	sessions := session.NewMemoryStore(time.Hour)
	cfg := &config.Config{
		SessionTTLDays: 60,
		CookieSameSite: "lax",
		CORSOrigin:     "http://localhost:5173",
	}
	return &testServer{
		router:   api.NewRouter(db, sessions, notify.LogNotifier{}, cfg),
		db:       db,
		sessions: sessions,
	}
}

// do sends a JSON request through the router and returns the recorder
func (ts *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// login creates a session directly in the store and returns its cookie
func (ts *testServer) login(t *testing.T, email string, role domain.Role) *http.Cookie {
	t.Helper()
	token, err := ts.sessions.Create(context.Background(), session.Data{Email: email, Role: role})
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

// seedUser inserts a user row with the given role
func (ts *testServer) seedUser(t *testing.T, email string, role domain.Role) {
	t.Helper()
	require.NoError(t, ts.db.Create(&domain.User{Email: email, Role: role}).Error)
}

// seedOrder inserts an order with sensible defaults, mutated by the callback
func (ts *testServer) seedOrder(t *testing.T, mutate func(*domain.Order)) domain.Order {
	t.Helper()
	now := time.Now()
	order := domain.Order{
		OrderID:       "ab12cd34",
		Email:         "customer@x.com",
		Address:       "12 Ridge Rd",
		CylinderType:  "14.5kg",
		Status:        domain.StatusPending,
		PaymentMethod: "cash",
		Date:          &now,
	}
	if mutate != nil {
		mutate(&order)
	}
	require.NoError(t, ts.db.Create(&order).Error)
	return order
}

// body decodes a JSON response body into a generic map
func body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func strptr(s string) *string { return &s }

func timeptr(tm time.Time) *time.Time { return &tm }
