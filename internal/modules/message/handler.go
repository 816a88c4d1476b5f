package message

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wilardzysenpai/portfolio-core/internal/modules/settings"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/apperr"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/mail"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/pagination"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/response"
)

type Handler struct {
	svc      *Service
	settings *settings.Service
	mailer   *mail.Sender
	log      *zap.Logger
}

func NewHandler(svc *Service, settings *settings.Service, mailer *mail.Sender, log *zap.Logger) *Handler {
	return &Handler{svc: svc, settings: settings, mailer: mailer, log: log}
}

// RegisterPublicRoutes mounts the contact form submission endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

// RegisterAdminRoutes mounts the inbox endpoints. The group must be auth-gated.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages", h.list)
	rg.GET("/messages/:id", h.get)
	rg.PATCH("/messages/:id/read", h.markRead)
	rg.DELETE("/messages/:id", h.delete)
}

func (h *Handler) submit(c *gin.Context) {
	enabled, err := h.settings.GetBool(settings.ContactFormKey, false)
	if err != nil {
		h.log.Error("read contact form setting", zap.Error(err))
		response.InternalError(c)
		return
	}
	if !enabled {
		response.Forbidden(c, "The contact form is currently disabled.")
		return
	}

	var dto SubmitMessageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if fields := dto.Validate(); len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}

	m, err := h.svc.Create(&dto)
	if err != nil {
		h.fail(c, err)
		return
	}

	// Notification failures must not affect the submission response.
	go func() {
		if err := h.mailer.NotifyNewMessage(m.Name, m.Email, m.Subject, m.Message); err != nil {
			h.log.Warn("send contact notification", zap.Error(err))
		}
	}()

	response.Created(c, gin.H{
		"success": true,
		"message": "Message sent successfully.",
		"data":    toResponse(m),
	})
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, page, err := h.svc.List(q)
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]messageResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	response.Paged(c, out, page)
}

func (h *Handler) get(c *gin.Context) {
	m, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, toResponse(m))
}

func (h *Handler) markRead(c *gin.Context) {
	m, err := h.svc.MarkRead(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, gin.H{
		"success": true,
		"message": "Message marked as read.",
		"data":    toResponse(m),
	})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, gin.H{
		"success": true,
		"message": "Message deleted.",
	})
}

// fail logs internal causes and lets the response boundary shape the rest.
func (h *Handler) fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Kind == apperr.KindInternal {
		h.log.Error("message operation failed", zap.Error(err))
	}
	response.Fail(c, err)
}
