package itinerary

import (
	"travel-booking/models"

	"github.com/lib/pq"
)

// Itinerary is a packaged multi-day tour
type Itinerary struct {
	models.Base
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Duration    string         `gorm:"type:varchar(100);not null" json:"duration"`
	Price       float64        `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	Category    string         `gorm:"type:varchar(100);not null" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	Highlights  pq.StringArray `gorm:"type:text[]" json:"highlights"`
	Includes    pq.StringArray `gorm:"type:text[]" json:"includes"`
	Difficulty  string         `gorm:"type:varchar(50)" json:"difficulty"`
	GroupSize   string         `gorm:"type:varchar(50)" json:"group_size"`
	Rating      float64        `gorm:"type:numeric(3,1);not null;default:0" json:"rating"`
	ImageURL    *string        `gorm:"type:varchar(2048)" json:"image_url"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}
