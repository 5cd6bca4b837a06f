package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// SamplePayload persists one named sample dataset used to preview designs.
// Payload holds the raw shape as uploaded; normalization happens on read.
type SamplePayload struct {
	ID        snowflake.ID   `gorm:"primaryKey"`
	OrgID     snowflake.ID   `gorm:"not null;uniqueIndex:idx_sample_payloads_org_name"`
	Name      string         `gorm:"type:text;not null;uniqueIndex:idx_sample_payloads_org_name"`
	Payload   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (SamplePayload) TableName() string { return "sample_payloads" }
