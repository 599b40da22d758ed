package models

import "github.com/shopspring/decimal"

// PublicService represents an administrative service offered to villagers,
// e.g. issuing a residence letter. IsActive is stored as a 0/1 integer column
// for compatibility with the existing schema.
type PublicService struct {
	BaseModel
	Name          string              `gorm:"type:varchar(150);not null" json:"name"`
	Description   string              `gorm:"type:text;not null" json:"description"`
	Requirements  *string             `gorm:"type:text" json:"requirements"`
	ProcessTime   *string             `gorm:"type:varchar(100)" json:"process_time"`
	Cost          decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"cost"`
	ContactPerson *string             `gorm:"type:varchar(100)" json:"contact_person"`
	OfficeHours   *string             `gorm:"type:varchar(100)" json:"office_hours"`
	IsActive      bool                `gorm:"not null" json:"is_active"`
}

// TableName pins the storage table name
func (PublicService) TableName() string {
	return "public_services"
}
