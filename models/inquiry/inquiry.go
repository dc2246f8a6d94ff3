package inquiry

import "travel-booking/models"

// Inquiry is a contact-form submission
type Inquiry struct {
	models.Base
	FirstName     string `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName      string `gorm:"type:varchar(255);not null" json:"last_name"`
	Email         string `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone         string `gorm:"type:varchar(50)" json:"phone"`
	ArrivalDate   string `gorm:"type:varchar(10)" json:"arrival_date"`
	DepartureDate string `gorm:"type:varchar(10)" json:"departure_date"`
	Adults        int    `gorm:"type:int;not null;default:1" json:"adults"`
	Children      int    `gorm:"type:int;not null;default:0" json:"children"`
	Message       string `gorm:"type:text" json:"message"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}
