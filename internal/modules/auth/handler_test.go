package auth

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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wilardzysenpai/portfolio-core/internal/models"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/cookies"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/token"
)

const (
	testUsername = "admin"
	testPassword = "admin123"
	testSecret   = "auth-test-secret"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.UserModel{
		Username: testUsername,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}).Error)
	return db
}

func newTestRouter(t *testing.T, db *gorm.DB) (*gin.Engine, *token.Codec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := token.NewCodec(testSecret, time.Hour)
	require.NoError(t, err)

	h := NewHandler(NewService(db, codec, zap.NewNop()), cookies.NewManager(false, time.Hour), zap.NewNop())
	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r, codec
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, ck := range res.Cookies() {
		if ck.Name == cookies.Name {
			return ck
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)
	r, codec := newTestRouter(t, db)

	w := postJSON(r, "/api/login", gin.H{"username": testUsername, "password": testPassword})
	require.Equal(t, http.StatusOK, w.Code)

	ck := sessionCookie(w.Result())
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)
	assert.Positive(t, ck.MaxAge)

	id, err := codec.Verify(ck.Value)
	require.NoError(t, err)
	assert.Equal(t, testUsername, id.Username)
	assert.Equal(t, models.RoleAdmin, id.Role)

	var u models.UserModel
	require.NoError(t, db.First(&u, "username = ?", testUsername).Error)
	assert.NotNil(t, u.LastLoginTime)
	assert.Equal(t, "192.0.2.1", u.LastLoginIP)
}

func TestLogin_SucceedsWhenAuditUpdateFails(t *testing.T) {
	db := newTestDB(t)
	r, _ := newTestRouter(t, db)

	// Break only the audit column; credential checks are unaffected.
	require.NoError(t, db.Exec("ALTER TABLE users DROP COLUMN last_login_time").Error)

	w := postJSON(r, "/api/login", gin.H{"username": testUsername, "password": testPassword})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, sessionCookie(w.Result()))
}

func TestLogin_UsernameCaseInsensitive(t *testing.T) {
	r, _ := newTestRouter(t, newTestDB(t))

	w := postJSON(r, "/api/login", gin.H{"username": "  ADMIN ", "password": testPassword})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := newTestRouter(t, newTestDB(t))

	w := postJSON(r, "/api/login", gin.H{"username": testUsername, "password": "nope12345"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, sessionCookie(w.Result()))
	assert.Contains(t, w.Body.String(), "Invalid username or password")
}

func TestLogin_UnknownUser_SameResponseAsWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t, newTestDB(t))

	wUser := postJSON(r, "/api/login", gin.H{"username": "ghost", "password": "whatever1"})
	wPass := postJSON(r, "/api/login", gin.H{"username": testUsername, "password": "wrong-pass"})

	assert.Equal(t, wPass.Code, wUser.Code)
	assert.JSONEq(t, wPass.Body.String(), wUser.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	r, _ := newTestRouter(t, newTestDB(t))

	w := postJSON(r, "/api/login", gin.H{"username": "", "password": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Details map[string][]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Details, "username")
	assert.Contains(t, body.Details, "password")
}

func TestLogout_ClearsCookieWithoutSession(t *testing.T) {
	r, _ := newTestRouter(t, newTestDB(t))

	w := postJSON(r, "/api/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	ck := sessionCookie(w.Result())
	require.NotNil(t, ck)
	assert.Negative(t, ck.MaxAge)
	assert.Empty(t, ck.Value)
}
