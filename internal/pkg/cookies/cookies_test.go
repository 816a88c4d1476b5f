package cookies

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func setCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer res.Body.Close()
	require.Len(t, res.Cookies(), 1)
	return res.Cookies()[0]
}

func TestSet_Attributes(t *testing.T) {
	c, w := newTestContext(t)
	m := NewManager(true, 24*time.Hour)

	m.Set(c, "tok-value")

	ck := setCookieFrom(t, w)
	assert.Equal(t, Name, ck.Name)
	assert.Equal(t, "tok-value", ck.Value)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, int((24 * time.Hour).Seconds()), ck.MaxAge)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
}

func TestSet_InsecureInDevelopment(t *testing.T) {
	c, w := newTestContext(t)
	m := NewManager(false, time.Hour)

	m.Set(c, "tok")

	assert.False(t, setCookieFrom(t, w).Secure)
}

func TestGet(t *testing.T) {
	c, _ := newTestContext(t)
	m := NewManager(false, time.Hour)

	_, ok := m.Get(c)
	assert.False(t, ok, "no cookie on request")

	c.Request.AddCookie(&http.Cookie{Name: Name, Value: "raw-token"})
	got, ok := m.Get(c)
	require.True(t, ok)
	assert.Equal(t, "raw-token", got)
}

func TestClear_ExpiresImmediately(t *testing.T) {
	c, w := newTestContext(t)
	m := NewManager(false, time.Hour)

	m.Clear(c)

	ck := setCookieFrom(t, w)
	assert.Equal(t, Name, ck.Name)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}
