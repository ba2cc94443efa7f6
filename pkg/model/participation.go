package model

import (
	"fmt"
	"time"
)

type ParticipationStatus string

const (
	StatusGoing      ParticipationStatus = "Going"
	StatusNotGoing   ParticipationStatus = "Not going"
	StatusInterested ParticipationStatus = "Interested"
)

// ParseParticipationStatus returns the status matching s exactly.
func ParseParticipationStatus(s string) (ParticipationStatus, error) {
	switch status := ParticipationStatus(s); status {
	case StatusGoing, StatusNotGoing, StatusInterested:
		return status, nil
	}
	return "", fmt.Errorf("invalid status %q, expected one of %q, %q or %q", s, StatusGoing, StatusNotGoing, StatusInterested)
}

// Participation records the intent of a user towards an event. There is at most one per user and
// event.
// swagger:model
type Participation struct {
	ID        uint                `gorm:"primarykey" json:"id"`
	CreatedAt time.Time           `json:"-"`
	UpdatedAt time.Time           `json:"-"`
	UserID    uint                `gorm:"not null;uniqueIndex:idx_participations_user_event" json:"userId"`
	User      *User               `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	EventID   uint                `gorm:"not null;uniqueIndex:idx_participations_user_event" json:"eventId"`
	Event     *Event              `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Status    ParticipationStatus `gorm:"size:10;not null;default:Interested;check:chk_participations_status,status IN ('Going','Not going','Interested')" json:"status"`
}

// EventParticipation is a participation of a user seen from the user's side.
// swagger:model
type EventParticipation struct {
	Event  Event               `json:"event"`
	Status ParticipationStatus `json:"status"`
}

// UserParticipation is a participation in an event seen from the event's side.
// swagger:model
type UserParticipation struct {
	User   User                `json:"user"`
	Status ParticipationStatus `json:"status"`
}
