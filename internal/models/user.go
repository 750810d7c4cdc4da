package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User represents a registered teacher account. PublicID is the opaque
// identifier handed to clients; Email is the lookup key for auth.
type User struct {
	gorm.Model
	PublicID    string `gorm:"uniqueIndex;not null"`
	Email       string `gorm:"uniqueIndex;not null"`
	DisplayName string `gorm:"not null;default:''"`
	Role        string `gorm:"not null;default:'teacher'"`
	LastLoginAt *time.Time
	Preferences datatypes.JSON
}

// Preferences holds a teacher's default language, subjects and grades
type Preferences struct {
	Language string   `json:"language"`
	Subjects []string `json:"subjects"`
	Grades   []string `json:"grades"`
}

// DefaultPreferences returns the preferences assigned at registration
func DefaultPreferences() Preferences {
	return Preferences{
		Language: "English",
		Subjects: []string{},
		Grades:   []string{},
	}
}

// DemoPreferences returns the preferences assigned to auto-provisioned
// demo accounts on first login with an unseen email.
func DemoPreferences() Preferences {
	return Preferences{
		Language: "English",
		Subjects: []string{"Mathematics", "Science"},
		Grades:   []string{"Grade 3", "Grade 4", "Grade 5"},
	}
}

// EncodePreferences marshals preferences for storage in the JSON column
func EncodePreferences(p Preferences) datatypes.JSON {
	data, _ := json.Marshal(p)
	return datatypes.JSON(data)
}
