package models

import "time"

// BaseModel carries the surrogate id and the two record timestamps shared by
// every entity except FinanceTransaction, which has no modification timestamp.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
