package destination

import (
	"travel-booking/models"

	"github.com/lib/pq"
)

// Destination is a place the agency sells trips to
type Destination struct {
	models.Base
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Continental string         `gorm:"type:varchar(100);not null" json:"continental"`
	Country     string         `gorm:"type:varchar(100);not null" json:"country"`
	Region      *string        `gorm:"type:varchar(255)" json:"region"`
	Description string         `gorm:"type:text" json:"description"`
	Highlights  pq.StringArray `gorm:"type:text[]" json:"highlights"`
	BestTime    string         `gorm:"type:varchar(255)" json:"best_time"`
	ImageURL    *string        `gorm:"type:varchar(2048)" json:"image_url"`
}

func (Destination) TableName() string {
	return "destinations"
}
