package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// FinanceTransaction represents one village income or expense entry. Amounts
// are stored as decimal(15,2) text so monetary sums never go through binary
// floats. Date is kept as an ISO yyyy-mm-dd string in a varchar column; a SQL
// date column would come back through the driver as a time.Time and reads
// must return the stored string byte for byte. The entity has no modification
// timestamp.
type FinanceTransaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Type        string          `gorm:"type:varchar(10);not null" json:"type"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	Date        string          `gorm:"type:varchar(10);not null" json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName pins the storage table name
func (FinanceTransaction) TableName() string {
	return "village_finance"
}

// IsValidTransactionType reports whether t is a member of the closed type enum
func IsValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}
