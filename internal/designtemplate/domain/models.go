package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// DesignTemplate persists one saved bill design. The Document column holds
// the full template aggregate as JSON; the print engine reads the same
// document, so the column round-trips byte-structure losslessly.
type DesignTemplate struct {
	ID           snowflake.ID   `gorm:"primaryKey"`
	OrgID        snowflake.ID   `gorm:"not null;index"`
	Name         string         `gorm:"type:text;not null"`
	DocumentType string         `gorm:"type:text;not null;default:'bill'"`
	IsDefault    bool           `gorm:"not null;default:false"`
	Document     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (DesignTemplate) TableName() string { return "design_templates" }

// Document types a design can target.
const (
	DocumentTypeBill           = "bill"
	DocumentTypeInvoice        = "invoice"
	DocumentTypeCreditNote     = "credit_note"
	DocumentTypePaymentReceipt = "payment_receipt"
)

// IsAllowedDocumentType reports whether t is a supported document type.
func IsAllowedDocumentType(t string) bool {
	switch t {
	case DocumentTypeBill, DocumentTypeInvoice, DocumentTypeCreditNote, DocumentTypePaymentReceipt:
		return true
	default:
		return false
	}
}
