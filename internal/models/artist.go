package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Artist исполнитель, которого можно забронировать на концерт.
type Artist struct {
	gorm.Model
	Name               string                      `gorm:"not null"`
	City               string                      `gorm:"size:120"`
	State              string                      `gorm:"size:120"`
	Phone              string                      `gorm:"size:120"`
	Genres             datatypes.JSONSlice[string] `gorm:"not null"`
	Website            string                      `gorm:"size:120"`
	ImageLink          string                      `gorm:"size:500"`
	FacebookLink       string                      `gorm:"size:120"`
	SeekingVenue       bool                        `gorm:"default:false"`
	SeekingDescription string
	Shows              []Show `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
