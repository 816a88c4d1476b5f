package models

// SettingModel is a key-value row for runtime flags (e.g. contactFormStatus).
// Values are stored JSON-encoded so booleans round-trip without a schema change.
type SettingModel struct {
	Base
	Name  string `json:"name"  gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:text"`
}

func (SettingModel) TableName() string { return "settings" }
