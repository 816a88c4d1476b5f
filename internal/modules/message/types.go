package message

import (
	"strings"
	"time"

	"github.com/wilardzysenpai/portfolio-core/internal/models"
)

// Field limits match the original contact form contract.
const (
	maxNameLen    = 100
	maxEmailLen   = 100
	maxSubjectLen = 150
	maxMessageLen = 5000

	minNameLen    = 2
	minSubjectLen = 5
	minMessageLen = 10
)

type SubmitMessageDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate returns per-field errors; an empty map means the input is clean.
func (d *SubmitMessageDTO) Validate() map[string][]string {
	fields := map[string][]string{}

	name := strings.TrimSpace(d.Name)
	if len(name) < minNameLen {
		fields["name"] = append(fields["name"], "Name must be at least 2 characters.")
	} else if len(name) > maxNameLen {
		fields["name"] = append(fields["name"], "Name must be at most 100 characters.")
	}

	email := strings.TrimSpace(d.Email)
	if !looksLikeEmail(email) {
		fields["email"] = append(fields["email"], "Please enter a valid email address.")
	} else if len(email) > maxEmailLen {
		fields["email"] = append(fields["email"], "Email must be at most 100 characters.")
	}

	subject := strings.TrimSpace(d.Subject)
	if len(subject) < minSubjectLen {
		fields["subject"] = append(fields["subject"], "Subject must be at least 5 characters.")
	} else if len(subject) > maxSubjectLen {
		fields["subject"] = append(fields["subject"], "Subject must be at most 150 characters.")
	}

	body := strings.TrimSpace(d.Message)
	if len(body) < minMessageLen {
		fields["message"] = append(fields["message"], "Message must be at least 10 characters.")
	} else if len(body) > maxMessageLen {
		fields["message"] = append(fields["message"], "Message must be at most 5000 characters.")
	}

	return fields
}

func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(s, " \t\r\n")
}

type messageResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Read    bool      `json:"read"`
	Created time.Time `json:"created"`
}

func toResponse(m *models.MessageModel) messageResponse {
	return messageResponse{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Subject: m.Subject,
		Message: m.Message,
		Read:    m.Read,
		Created: m.CreatedAt,
	}
}
