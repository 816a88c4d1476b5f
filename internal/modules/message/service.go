package message

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/wilardzysenpai/portfolio-core/internal/models"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/apperr"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/pagination"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/response"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(dto *SubmitMessageDTO) (*models.MessageModel, error) {
	m := &models.MessageModel{
		Name:    strings.TrimSpace(dto.Name),
		Email:   strings.ToLower(strings.TrimSpace(dto.Email)),
		Subject: strings.TrimSpace(dto.Subject),
		Message: strings.TrimSpace(dto.Message),
	}
	if err := s.db.Create(m).Error; err != nil {
		return nil, apperr.Internal("store contact message", err)
	}
	return m, nil
}

// List returns messages newest first.
func (s *Service) List(q pagination.Query) ([]models.MessageModel, response.Pagination, error) {
	query := s.db.Model(&models.MessageModel{}).Order("created_at DESC")
	var items []models.MessageModel
	page, err := pagination.Paginate(query, q, &items)
	if err != nil {
		return nil, response.Pagination{}, apperr.Internal("list messages", err)
	}
	return items, page, nil
}

func (s *Service) GetByID(id string) (*models.MessageModel, error) {
	var m models.MessageModel
	err := s.db.First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Message not found")
	}
	if err != nil {
		return nil, apperr.Internal("load message", err)
	}
	return &m, nil
}

func (s *Service) MarkRead(id string) (*models.MessageModel, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !m.Read {
		if err := s.db.Model(m).Update("read", true).Error; err != nil {
			return nil, apperr.Internal("mark message read", err)
		}
		m.Read = true
	}
	return m, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Unscoped().Delete(&models.MessageModel{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Internal("delete message", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Message not found")
	}
	return nil
}
