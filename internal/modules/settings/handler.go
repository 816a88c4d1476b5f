package settings

import (
	"github.com/gin-gonic/gin"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterPublicRoutes exposes the read-only flag to the contact page.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings/contact-form", h.getContactForm)
}

// RegisterAdminRoutes installs the toggle on the gated admin API group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings/contact-form", h.getContactForm)
	rg.PATCH("/settings/contact-form", h.patchContactForm)
}

func (h *Handler) getContactForm(c *gin.Context) {
	isActive, err := h.svc.GetBool(ContactFormKey, false)
	if err != nil {
		h.log.Error("fetch contact form setting failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"isActive": isActive})
}

type updateContactFormDTO struct {
	IsActive *bool `json:"isActive"`
}

func (h *Handler) patchContactForm(c *gin.Context) {
	var dto updateContactFormDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid JSON payload")
		return
	}
	if dto.IsActive == nil {
		response.ValidationFailed(c, map[string][]string{
			"isActive": {"isActive (boolean) is required in body"},
		})
		return
	}

	if err := h.svc.SetBool(ContactFormKey, *dto.IsActive); err != nil {
		h.log.Error("update contact form setting failed", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{
		"success":  true,
		"message":  "Contact form status updated.",
		"isActive": *dto.IsActive,
	})
}
