package models

import (
	"time"

	"autoshop-backend/finance"
	"autoshop-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentTypeCash = "CASH"
	PaymentTypeCard = "CARD"
)

// Supply is one line item of a supplier invoice. Rows belonging to the same
// logical invoice share an InvoiceNumber and must agree on supplier, date and
// payment type; that is enforced when a batch is created.
type Supply struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`

	InvoiceNumber string     `gorm:"index;not null" json:"invoiceNumber"`
	SupplierID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"supplierId"`
	Supplier      *Supplier  `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	SuppliedDate  time.Time  `gorm:"not null" json:"suppliedDate"`
	PaymentType   string     `gorm:"type:varchar(10);not null" json:"paymentType"` // 'CASH' or 'CARD'
	Remarks       string     `json:"remarks"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	Quantity int             `gorm:"default:1" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	GSTAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"gstAmount"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"lineTotal"`

	Month int `gorm:"index:idx_supplies_period;not null" json:"month"`
	Year  int `gorm:"index:idx_supplies_period;not null" json:"year"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeSave re-derives the line amounts and the period key on every write,
// so a date or price edit cannot leave stale derived columns behind.
func (s *Supply) BeforeSave(tx *gorm.DB) (err error) {
	line := finance.ComputeSupplyLine(s.Quantity, s.Price)
	s.Amount = line.Amount
	s.GSTAmount = line.GST
	s.LineTotal = line.Total
	s.Month, s.Year = utils.PeriodOf(s.SuppliedDate)
	return
}

func (s *Supply) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
