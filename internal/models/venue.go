package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Venue площадка, на которой проходят концерты.
type Venue struct {
	gorm.Model
	Name               string                      `gorm:"not null"`
	City               string                      `gorm:"size:120;index:idx_venues_area"`
	State              string                      `gorm:"size:120;index:idx_venues_area"`
	Address            string                      `gorm:"size:120"`
	Phone              string                      `gorm:"size:120"`
	ImageLink          string                      `gorm:"size:500"`
	FacebookLink       string                      `gorm:"size:120"`
	Genres             datatypes.JSONSlice[string] `gorm:"not null"`
	Website            string                      `gorm:"size:120"`
	SeekingTalent      bool                        `gorm:"default:false"`
	SeekingDescription string
	Shows              []Show `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
