package booking

import "travel-booking/models"

// Booking is a reservation request for one accommodation or itinerary.
// ItemID is not a foreign key; deleting the item leaves bookings intact.
type Booking struct {
	models.Base
	BookingType     BookingType `gorm:"size:20;not null;index" json:"booking_type"`
	ItemID          string      `gorm:"type:varchar(36);not null;index" json:"item_id"`
	ItemName        string      `gorm:"type:varchar(255);not null" json:"item_name"`
	FullName        string      `gorm:"type:varchar(255);not null" json:"full_name"`
	Email           string      `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone           string      `gorm:"type:varchar(50)" json:"phone"`
	CheckInDate     string      `gorm:"type:varchar(10);not null" json:"check_in_date"`
	CheckOutDate    string      `gorm:"type:varchar(10);not null" json:"check_out_date"`
	NumberOfDays    int         `gorm:"type:int;not null;default:0" json:"number_of_days"`
	Adults          int         `gorm:"type:int;not null;default:1" json:"adults"`
	Children        int         `gorm:"type:int;not null;default:0" json:"children"`
	SpecialRequests string      `gorm:"type:text" json:"special_requests"`
}

func (Booking) TableName() string {
	return "bookings"
}
