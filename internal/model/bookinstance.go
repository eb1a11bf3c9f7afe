package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookInstanceStatus string

const (
	StatusAvailable   BookInstanceStatus = "Available"
	StatusMaintenance BookInstanceStatus = "Maintenance"
	StatusLoaned      BookInstanceStatus = "Loaned"
	StatusReserved    BookInstanceStatus = "Reserved"
)

// Statuses lists every status in the order forms present them.
var Statuses = []BookInstanceStatus{
	StatusMaintenance,
	StatusAvailable,
	StatusLoaned,
	StatusReserved,
}

func IsValidStatus(s string) bool {
	for _, st := range Statuses {
		if string(st) == s {
			return true
		}
	}
	return false
}

// BookInstance is one physical copy of a Book.
type BookInstance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Book      Book
	Imprint   string             `gorm:"not null"`
	Status    BookInstanceStatus `gorm:"not null;default:Maintenance"`
	DueBack   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (bi *BookInstance) BeforeCreate(tx *gorm.DB) (err error) {
	bi.ApplyDefaults(time.Now())
	return
}

// ApplyDefaults fills the id, status and due date when unset.
func (bi *BookInstance) ApplyDefaults(now time.Time) {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	if bi.Status == "" {
		bi.Status = StatusMaintenance
	}
	if bi.DueBack.IsZero() {
		bi.DueBack = now
	}
}

func (bi BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID.String()
}

func (bi BookInstance) DueBackFormatted() string {
	return FormatDate(&bi.DueBack)
}
