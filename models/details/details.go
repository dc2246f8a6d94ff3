package details

import (
	"time"

	"travel-booking/models"
)

// Details holds the extended, variable-shape fields of one catalog entry.
// ID is the id of the entry it belongs to.
type Details struct {
	ID        string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Data      models.Document `gorm:"type:jsonb;not null" json:"data"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
