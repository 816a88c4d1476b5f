package models

// MessageModel is a contact form submission.
type MessageModel struct {
	Base
	Name    string `json:"name"    gorm:"size:100;not null"`
	Email   string `json:"email"   gorm:"size:100;not null"`
	Subject string `json:"subject" gorm:"size:150;not null"`
	Message string `json:"message" gorm:"type:text;not null"`
	Read    bool   `json:"read"    gorm:"default:false"`
}

func (MessageModel) TableName() string { return "messages" }
