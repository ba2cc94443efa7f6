package model

import (
	"time"

	"gorm.io/datatypes"
)

// User domain object defining a user
// swagger:model
type User struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time      `json:"createdAt"`
	FirstName      string         `gorm:"size:40;not null" json:"firstName"`
	LastName       string         `gorm:"size:60;not null" json:"lastName"`
	Email          string         `gorm:"size:50;not null;uniqueIndex" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	Birthday       datatypes.Date `gorm:"not null" json:"birthday"`
	ProfilePicture *string        `gorm:"size:255" json:"profilePicture"`
}

const (
	MaxFirstNameLength = 40
	MaxLastNameLength  = 60
	MaxEmailLength     = 50
)

// BirthdayLayout is the only accepted format for birthdays.
const BirthdayLayout = time.DateOnly

// ParseBirthday parses s using BirthdayLayout.
func ParseBirthday(s string) (datatypes.Date, error) {
	t, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}
