package models

// Resident represents a registered inhabitant of the village
type Resident struct {
	BaseModel
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Address string `gorm:"type:varchar(255);not null" json:"address"`
	Job     string `gorm:"type:varchar(100);not null" json:"job"`
}

// TableName pins the storage table name
func (Resident) TableName() string {
	return "residents"
}
