package settings

import (
	"encoding/json"
	"errors"

	"github.com/wilardzysenpai/portfolio-core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContactFormKey is the flag the public contact page consults.
const ContactFormKey = "contactFormStatus"

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetBool reads a boolean setting, returning def when the key is unset or
// does not decode as a boolean.
func (s *Service) GetBool(name string, def bool) (bool, error) {
	var row models.SettingModel
	if err := s.db.Where("name = ?", name).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return def, nil
		}
		return def, err
	}
	var v bool
	if err := json.Unmarshal([]byte(row.Value), &v); err != nil {
		return def, nil
	}
	return v, nil
}

// SetBool upserts a boolean setting.
func (s *Service) SetBool(name string, v bool) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.SettingModel{Name: name, Value: string(raw)}).Error
}
