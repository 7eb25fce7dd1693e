package models

import (
	"time"

	"autoshop-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	IssuedDate  time.Time       `gorm:"not null" json:"issuedDate"`

	Month int `gorm:"index:idx_expenses_period;not null" json:"month"`
	Year  int `gorm:"index:idx_expenses_period;not null" json:"year"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeSave keeps the stored period key in step with the issued date.
func (e *Expense) BeforeSave(tx *gorm.DB) (err error) {
	e.Month, e.Year = utils.PeriodOf(e.IssuedDate)
	return
}

func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
