package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Note is a persisted fiscal note header. Duplicate submissions of the same
// document create duplicate rows; access_key carries no unique index.
type Note struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	NoteType          string          `gorm:"size:50" json:"note_type"`
	NoteNumber        string          `gorm:"size:100" json:"note_number"`
	Series            string          `gorm:"size:50" json:"series"`
	AccessKey         string          `gorm:"size:100" json:"access_key"`
	IssuerCNPJ        string          `gorm:"size:20" json:"issuer_cnpj"`
	IssuerIE          string          `gorm:"size:20" json:"issuer_ie"`
	IssuerCity        string          `gorm:"size:100" json:"issuer_city"`
	IssuerState       string          `gorm:"size:2" json:"issuer_state"`
	IssuerZipCode     string          `gorm:"size:10" json:"issuer_zip_code"`
	Provider          string          `gorm:"size:255;not null" json:"provider"`
	NatureOfOperation string          `gorm:"size:255" json:"nature_of_operation"`
	ProtocolNumber    string          `gorm:"size:100" json:"protocol_number"`
	DateOfIssue       time.Time       `gorm:"type:date;not null" json:"date_of_issue"`
	TotalValue        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_value"`
	PDFURL            string          `gorm:"type:text" json:"pdf_url"`
	CreatedAt         time.Time       `json:"created_at"`

	Items []NoteItem `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE" json:"items"`
}

// NoteItem is one product or service line belonging to a Note. Rows are
// removed by the database when their parent note is deleted.
type NoteItem struct {
	ID            uint                `gorm:"primaryKey" json:"id"`
	NoteID        uint                `gorm:"not null;index" json:"note_id"`
	ProductName   string              `gorm:"size:255;not null" json:"product_name"`
	ProductCode   string              `gorm:"size:100" json:"product_code"`
	NCM           string              `gorm:"size:20" json:"ncm"`
	CFOP          string              `gorm:"size:10" json:"cfop"`
	DiscountValue decimal.NullDecimal `gorm:"type:numeric(12,4)" json:"discount_value"`
	ICMSValue     decimal.NullDecimal `gorm:"type:numeric(12,4)" json:"icms_value"`
	IPIValue      decimal.NullDecimal `gorm:"type:numeric(12,4)" json:"ipi_value"`
	Quantity      decimal.Decimal     `gorm:"type:numeric(14,4)" json:"quantity"`
	UnitOfMeasure string              `gorm:"size:10" json:"unit_of_measure"`
	UnitValue     decimal.Decimal     `gorm:"type:numeric(12,4)" json:"unit_value"`
	CreatedAt     time.Time           `json:"created_at"`
}
