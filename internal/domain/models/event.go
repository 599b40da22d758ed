package models

import "github.com/shopspring/decimal"

// Event statuses. The set is closed but there is no enforced transition order:
// any status may move to any other.
const (
	EventStatusPlanned   = "planned"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// UpcomingEventStatuses are the statuses an event counts as upcoming under,
// regardless of its event_date.
var UpcomingEventStatuses = []string{EventStatusPlanned, EventStatusOngoing}

// Event represents a village activity or gathering
type Event struct {
	BaseModel
	Name             string              `gorm:"type:varchar(150);not null" json:"name"`
	Description      *string             `gorm:"type:text" json:"description"`
	Location         string              `gorm:"type:varchar(255);not null" json:"location"`
	EventDate        string              `gorm:"type:varchar(10);not null" json:"event_date"`
	Organizer        string              `gorm:"type:varchar(100);not null" json:"organizer"`
	ParticipantCount *int                `json:"participant_count"`
	Budget           decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"budget"`
	Status           string              `gorm:"type:varchar(20);not null;default:planned" json:"status"`
}

// TableName pins the storage table name
func (Event) TableName() string {
	return "village_events"
}

// IsValidEventStatus reports whether s is a member of the closed status enum
func IsValidEventStatus(s string) bool {
	switch s {
	case EventStatusPlanned, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}
