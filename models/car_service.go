package models

import (
	"time"

	"autoshop-backend/finance"
	"autoshop-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CarService is one customer-facing invoice for work done on a car.
// Subtotal, TotalAmount and GSTAmount are derived server-side from the items
// and discount; GSTAmount is the component already included in TotalAmount.
type CarService struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`

	CarPlate   string `gorm:"index;not null" json:"carPlate"`
	CarDetails string `json:"carDetails"`
	OwnerName  string `gorm:"not null" json:"ownerName"`
	PhoneNo    string `json:"phoneNo"`

	CarInDateTime  time.Time  `gorm:"not null" json:"carInDateTime"`
	CarOutDateTime *time.Time `json:"carOutDateTime"`

	DiscountType   *string         `gorm:"type:varchar(20)" json:"discountType"` // 'PERCENTAGE' or 'FIXED'
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);default:0.0" json:"discountAmount"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	GSTAmount   decimal.Decimal `gorm:"type:decimal(10,2);default:0.0" json:"gstAmount"`

	PaidInCash decimal.Decimal `gorm:"type:decimal(10,2);default:0.0" json:"paidInCash"`
	PaidInCard decimal.Decimal `gorm:"type:decimal(10,2);default:0.0" json:"paidInCard"`

	Month int `gorm:"index:idx_car_services_period;not null" json:"month"`
	Year  int `gorm:"index:idx_car_services_period;not null" json:"year"`

	Items []CarServiceItem `gorm:"foreignKey:CarServiceID" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CarServiceItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CarServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"carServiceId"`

	Name     string `gorm:"not null" json:"name"`
	ItemType string `gorm:"type:varchar(10);not null;default:'SERVICE'" json:"itemType"` // 'SERVICE' or 'PARTS'

	Quantity  int             `gorm:"default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
}

// IsOpen reports whether the car is still in the shop.
func (cs *CarService) IsOpen() bool {
	return cs.CarOutDateTime == nil
}

// Settlement derives the payment status from the stored amounts.
func (cs *CarService) Settlement() finance.Settlement {
	return finance.Reconcile(cs.TotalAmount, cs.PaidInCash, cs.PaidInCard)
}

// BeforeSave keeps the stored period key in step with the car-in date, so an
// edited date can never leave a stale (month, year) behind.
func (cs *CarService) BeforeSave(tx *gorm.DB) (err error) {
	cs.Month, cs.Year = utils.PeriodOf(cs.CarInDateTime)
	return
}

func (cs *CarService) BeforeCreate(tx *gorm.DB) (err error) {
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	return
}

// BeforeSave derives the line amount so a stored item can never disagree
// with its quantity and unit price.
func (i *CarServiceItem) BeforeSave(tx *gorm.DB) (err error) {
	i.Amount = finance.ComputeLine(i.Quantity, i.UnitPrice)
	return
}

func (i *CarServiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
