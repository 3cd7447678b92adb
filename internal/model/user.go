package model

import (
	"time"
)

type UserRole string

const (
	Member    UserRole = "member"
	Clinician UserRole = "clinician"
	Admin     UserRole = "admin"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// swagger:model User
type User struct {
	BaseModel
	Name        string     `gorm:"size:100;not null" json:"name"`
	Email       string     `gorm:"size:100;unique;not null" json:"email"`
	Password    string     `gorm:"size:100;not null" json:"-"`
	Role        UserRole   `gorm:"type:enum('member','clinician','admin');default:'member'" json:"role"`
	Gender      Gender     `gorm:"size:10" json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Disabled    bool       `gorm:"default:false" json:"disabled"`
	LastLogin   time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen    time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
