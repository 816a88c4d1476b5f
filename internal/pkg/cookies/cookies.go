package cookies

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Name is the session cookie name.
const Name = "auth_token"

// Manager reads and writes the session cookie. It is a transport only:
// token validation never happens here.
type Manager struct {
	// Secure marks the cookie HTTPS-only; enabled in production.
	Secure bool
	// MaxAge mirrors the token TTL.
	MaxAge time.Duration
}

func NewManager(secure bool, maxAge time.Duration) *Manager {
	return &Manager{Secure: secure, MaxAge: maxAge}
}

// Set writes the cookie on the outgoing response.
func (m *Manager) Set(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Get returns the raw token from the incoming request, if present.
func (m *Manager) Get(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(Name)
	if err != nil || raw == "" {
		return "", false
	}
	return raw, true
}

// Clear removes the cookie with an immediately-expired directive.
func (m *Manager) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
