package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Author struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"not null"`
	FamilyName  string    `gorm:"not null;index"`
	DateOfBirth *time.Time
	DateOfDeath *time.Time
	Books       []Book `gorm:"foreignKey:AuthorID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Name is the display name, family name first.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return a.FamilyName + a.FirstName
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan renders "birth - death" with either side blank when unknown.
func (a Author) Lifespan() string {
	birth := FormatDate(a.DateOfBirth)
	death := FormatDate(a.DateOfDeath)
	if birth == "" && death == "" {
		return ""
	}
	return birth + " - " + death
}

func (a Author) URL() string {
	return "/catalog/author/" + a.ID.String()
}
