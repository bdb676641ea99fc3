package models

import (
	"time"

	"gorm.io/gorm"
)

// Show выступление исполнителя на площадке в заданное время.
// Прошедший/предстоящий статус не хранится, он вычисляется при чтении.
type Show struct {
	gorm.Model
	ArtistID  uint      `gorm:"index;not null"`
	Artist    Artist    `gorm:"foreignKey:ArtistID"`
	VenueID   uint      `gorm:"index;not null"`
	Venue     Venue     `gorm:"foreignKey:VenueID"`
	StartTime time.Time `gorm:"index;not null"` // хранится в UTC
}
