package models

import "github.com/shopspring/decimal"

// Asset conditions (closed set).
const (
	AssetConditionExcellent = "excellent"
	AssetConditionGood      = "good"
	AssetConditionFair      = "fair"
	AssetConditionPoor      = "poor"
)

// AssetConditions lists every condition in summary order; the assets summary
// reports a count for each of them even when it is zero.
var AssetConditions = []string{
	AssetConditionExcellent,
	AssetConditionGood,
	AssetConditionFair,
	AssetConditionPoor,
}

// Asset represents a piece of village property. Category filtering is exact
// and case-sensitive; the deployment schema gives the category column a binary
// collation so MySQL honors that.
type Asset struct {
	BaseModel
	Name         string          `gorm:"type:varchar(150);not null" json:"name"`
	Description  *string         `gorm:"type:text" json:"description"`
	Category     string          `gorm:"type:varchar(100);not null" json:"category"`
	Value        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"value"`
	Condition    string          `gorm:"column:condition;type:varchar(20);not null" json:"condition"`
	Location     string          `gorm:"type:varchar(255);not null" json:"location"`
	PurchaseDate *string         `gorm:"type:varchar(10)" json:"purchase_date"`
}

// TableName pins the storage table name
func (Asset) TableName() string {
	return "village_assets"
}

// IsValidAssetCondition reports whether c is a member of the closed condition enum
func IsValidAssetCondition(c string) bool {
	switch c {
	case AssetConditionExcellent, AssetConditionGood, AssetConditionFair, AssetConditionPoor:
		return true
	}
	return false
}
