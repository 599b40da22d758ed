package models

import "github.com/shopspring/decimal"

// Budget represents a yearly allocation for one spending category. UsedAmount
// starts at zero and is only ever changed through updates; it is not derived
// from FinanceTransaction rows (categories link by name only, no foreign key).
type Budget struct {
	BaseModel
	Category        string          `gorm:"type:varchar(100);not null" json:"category"`
	AllocatedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"allocated_amount"`
	UsedAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"used_amount"`
	Year            int             `gorm:"not null" json:"year"`
}

// TableName pins the storage table name
func (Budget) TableName() string {
	return "village_budget"
}
