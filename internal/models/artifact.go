package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Artifact kind constants
const (
	KindContent    = "content"
	KindWorksheet  = "worksheet"
	KindVisualAid  = "visual_aid"
	KindAssessment = "assessment"
	KindVideo      = "video"
)

// Kinds lists every artifact kind in stats order.
var Kinds = []string{KindContent, KindWorksheet, KindVisualAid, KindAssessment, KindVideo}

// Artifact represents one generated teaching resource. UserID is the opaque
// requester ID and is not a foreign key: unauthenticated demo IDs are
// permitted. Records are immutable once written.
type Artifact struct {
	gorm.Model
	PublicID string `gorm:"uniqueIndex;not null"`
	Kind     string `gorm:"not null;index"`
	UserID   string `gorm:"not null;index"`
	Payload  datatypes.JSON
	Metadata datatypes.JSON
}
