package user

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wilardzysenpai/portfolio-core/internal/middleware"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/response"
	"go.uber.org/zap"
)

const minPasswordLength = 8

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes installs the profile endpoints on the gated admin API group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/session", h.session)
	rg.PATCH("/profile/change-password", h.changePassword)
}

// session echoes the authenticated identity for dashboard bootstrap.
func (h *Handler) session(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, gin.H{
		"userId":   id.UserID,
		"username": id.Username,
		"role":     id.Role,
	})
}

func (h *Handler) changePassword(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid JSON payload")
		return
	}

	fields := map[string][]string{}
	if dto.CurrentPassword == "" {
		fields["currentPassword"] = append(fields["currentPassword"], "Current password is required.")
	}
	if len(dto.NewPassword) < minPasswordLength {
		fields["newPassword"] = append(fields["newPassword"], "New password must be at least 8 characters long.")
	}
	if dto.NewPassword != dto.ConfirmPassword {
		fields["confirmPassword"] = append(fields["confirmPassword"], "New passwords don't match.")
	}
	if len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}

	if err := h.svc.ChangePassword(id.UserID, dto.CurrentPassword, dto.NewPassword); err != nil {
		switch {
		case errors.Is(err, errWrongPassword):
			response.ValidationFailed(c, map[string][]string{
				"currentPassword": {"Incorrect current password."},
			})
		case errors.Is(err, errUserNotFound):
			response.NotFound(c, "User not found")
		default:
			h.log.Error("change password failed", zap.String("user_id", id.UserID), zap.Error(err))
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"success": true, "message": "Password updated successfully."})
}
