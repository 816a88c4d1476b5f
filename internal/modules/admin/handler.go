package admin

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wilardzysenpai/portfolio-core/internal/middleware"
)

// Handler serves the admin HTML pages. The pages are minimal server-rendered
// shells; the auth gate in front of this group decides who sees them.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/login", h.loginPage)
	rg.GET("/dashboard", h.dashboardPage)
}

func (h *Handler) loginPage(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = loginTmpl.Execute(c.Writer, nil)
}

func (h *Handler) dashboardPage(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = dashboardTmpl.Execute(c.Writer, map[string]string{
		"Username": identity.Username,
	})
}

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Admin Login</title>
</head>
<body>
  <main>
    <h1>Admin Login</h1>
    <form id="login-form" method="post" action="/api/login">
      <label>Username <input type="text" name="username" autocomplete="username" required></label>
      <label>Password <input type="password" name="password" autocomplete="current-password" required></label>
      <button type="submit">Sign in</button>
    </form>
    <script>
      document.getElementById("login-form").addEventListener("submit", async (e) => {
        e.preventDefault();
        const form = new FormData(e.target);
        const res = await fetch("/api/login", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ username: form.get("username"), password: form.get("password") }),
        });
        if (res.ok) { window.location.href = "/admin/dashboard"; }
      });
    </script>
  </main>
</body>
</html>
`))

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Admin Dashboard</title>
</head>
<body>
  <main>
    <h1>Dashboard</h1>
    <p>Signed in as <strong>{{.Username}}</strong>.</p>
    <nav>
      <a href="/api/admin/messages">Messages</a>
      <a href="/api/admin/settings/contact-form">Contact form settings</a>
    </nav>
    <form method="post" action="/api/logout">
      <button type="submit">Log out</button>
    </form>
  </main>
</body>
</html>
`))
