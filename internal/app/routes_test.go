package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wilardzysenpai/portfolio-core/internal/config"
	"github.com/wilardzysenpai/portfolio-core/internal/database"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/cookies"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/token"
)

// newTestApp wires the full router against an in-memory store, bypassing only
// the MySQL and Redis connects in New.
func newTestApp(t *testing.T) *App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	cfg := &config.AppConfig{Port: 3000, Env: "production", JWTSecret: "routes-test-secret"}
	codec, err := token.NewCodec(cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	log := zap.NewNop()
	a := &App{
		cfg:    cfg,
		router: newRouter(cfg, log),
		db:     db,
		codec:  codec,
		ck:     cookies.NewManager(false, codec.TTL()),
		logger: log,
	}
	a.registerRoutes()
	return a
}

func request(a *App, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, a *App) *http.Cookie {
	t.Helper()
	w := request(a, http.MethodPost, "/api/login", gin.H{
		"username": database.SeedAdminUsername,
		"password": "admin123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookies.Name {
			return ck
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	a := newTestApp(t)

	w := request(a, http.MethodGet, "/api/login", nil, nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var body struct {
		OK   int `json:"ok"`
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Zero(t, body.OK)
	assert.Equal(t, http.StatusMethodNotAllowed, body.Code)
}

func TestRoutes_UnknownPath404(t *testing.T) {
	a := newTestApp(t)

	w := request(a, http.MethodGet, "/api/nope", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":404`)
}

func TestRoutes_Healthz(t *testing.T) {
	a := newTestApp(t)

	w := request(a, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "up", body["database"])
}

func TestRoutes_AdminFlow(t *testing.T) {
	a := newTestApp(t)

	// No session: API 401, page redirect.
	w := request(a, http.MethodGet, "/api/admin/session", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = request(a, http.MethodGet, "/admin/dashboard", nil, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, loginPath, w.Header().Get("Location"))

	ck := login(t, a)

	w = request(a, http.MethodGet, "/api/admin/session", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), database.SeedAdminUsername)

	w = request(a, http.MethodGet, "/admin/dashboard", nil, ck)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_UnknownAdminPageStaysGated(t *testing.T) {
	a := newTestApp(t)

	w := request(a, http.MethodGet, "/admin/whatever", nil, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, loginPath, w.Header().Get("Location"))

	ck := login(t, a)
	w = request(a, http.MethodGet, "/admin/whatever", nil, ck)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
