package accommodation

import (
	"travel-booking/models"

	"github.com/lib/pq"
)

// Accommodation is a lodge, camp or hotel row as stored in accommodations
// and admin_accommodations.
type Accommodation struct {
	models.Base
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Continental string         `gorm:"type:varchar(100);not null" json:"continental"`
	Country     string         `gorm:"type:varchar(100);not null" json:"country"`
	Destination string         `gorm:"type:varchar(100);not null" json:"destination"`
	Category    string         `gorm:"type:varchar(100);not null" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	Rating      float64        `gorm:"type:numeric(3,1);not null;default:0" json:"rating"`
	ImageURL    *string        `gorm:"type:varchar(2048)" json:"image_url"`
	Features    pq.StringArray `gorm:"type:text[]" json:"features"`
}

func (Accommodation) TableName() string {
	return "accommodations"
}
