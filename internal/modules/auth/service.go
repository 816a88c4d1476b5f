package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/wilardzysenpai/portfolio-core/internal/models"
	"github.com/wilardzysenpai/portfolio-core/internal/pkg/token"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	codec *token.Codec
	log   *zap.Logger
}

func NewService(db *gorm.DB, codec *token.Codec, log *zap.Logger) *Service {
	return &Service{db: db, codec: codec, log: log}
}

// Login validates credentials and issues a session token. The two failure
// modes stay distinct here for audit logging; callers must surface them to
// the client identically.
func (s *Service) Login(username, password, ip string) (string, error) {
	var u models.UserModel
	err := s.db.Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errUserNotFound
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", errWrongPassword
	}

	// Losing the audit fields must not block the login itself.
	now := time.Now()
	if err := s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	}).Error; err != nil {
		s.log.Warn("failed to record last login",
			zap.String("username", u.Username),
			zap.Error(err),
		)
	}

	return s.codec.Issue(token.Identity{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
}
