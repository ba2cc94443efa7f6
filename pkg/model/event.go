package model

import (
	"fmt"
	"time"
)

// Event domain object defining a geotagged event owned by a user
// swagger:model
type Event struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	OwnerID     uint      `gorm:"not null;index" json:"ownerId"`
	Owner       *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"size:40;not null" json:"title"`
	Description string    `gorm:"size:300;not null" json:"description"`
	StartTime   time.Time `gorm:"not null" json:"startTime"`
	EndTime     time.Time `gorm:"not null" json:"endTime"`
	Geometry    Geometry  `gorm:"type:geometry(Geometry,4326);not null" json:"geometry"`
	Color       string    `gorm:"size:9;not null" json:"color"`
}

const (
	MaxTitleLength       = 40
	MaxDescriptionLength = 300
	MaxColorLength       = 9
)

var eventTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseEventTime parses an ISO-8601 timestamp such as "2025-06-01T18:30". Values without an offset
// are taken as UTC.
func ParseEventTime(s string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not an ISO-8601 timestamp", s)
}
