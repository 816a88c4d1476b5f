package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/cookies"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc     *Service
	cookies *cookies.Manager
	log     *zap.Logger
}

func NewHandler(svc *Service, ck *cookies.Manager, log *zap.Logger) *Handler {
	return &Handler{svc: svc, cookies: ck, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
	rg.POST("/logout", h.logout)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid JSON payload")
		return
	}

	fields := map[string][]string{}
	if strings.TrimSpace(dto.Username) == "" {
		fields["username"] = append(fields["username"], "Username is required.")
	}
	if dto.Password == "" {
		fields["password"] = append(fields["password"], "Password is required.")
	}
	if len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}

	tok, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, errUserNotFound) || errors.Is(err, errWrongPassword) {
			// Identical client response for both; the distinction is audit-only.
			h.log.Warn("login rejected",
				zap.String("username", dto.Username),
				zap.String("ip", c.ClientIP()),
				zap.Error(err),
			)
			response.UnauthorizedMsg(c, "Invalid username or password")
			return
		}
		h.log.Error("login failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.cookies.Set(c, tok)
	response.OK(c, gin.H{"success": true, "message": "Login successful"})
}

// logout clears the cookie; calling it without a session still succeeds.
func (h *Handler) logout(c *gin.Context) {
	h.cookies.Clear(c)
	response.OK(c, gin.H{"success": true, "message": "Logged out successfully"})
}
