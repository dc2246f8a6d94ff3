package volunteer

import (
	"travel-booking/models"

	"github.com/lib/pq"
)

// Application is a volunteer-program application form
type Application struct {
	models.Base
	ProgramID                    string         `gorm:"type:varchar(100);not null;index" json:"program_id"`
	FirstName                    string         `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName                     string         `gorm:"type:varchar(255);not null" json:"last_name"`
	Email                        string         `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone                        string         `gorm:"type:varchar(50)" json:"phone"`
	DateOfBirth                  string         `gorm:"type:varchar(10)" json:"date_of_birth"`
	Nationality                  string         `gorm:"type:varchar(100)" json:"nationality"`
	StartDate                    string         `gorm:"type:varchar(10)" json:"start_date"`
	Duration                     string         `gorm:"type:varchar(100)" json:"duration"`
	Excursions                   pq.StringArray `gorm:"type:text[]" json:"excursions"`
	EmergencyContactName         string         `gorm:"type:varchar(255)" json:"emergency_contact_name"`
	EmergencyContactPhone        string         `gorm:"type:varchar(50)" json:"emergency_contact_phone"`
	EmergencyContactRelationship string         `gorm:"type:varchar(100)" json:"emergency_contact_relationship"`
	Motivation                   string         `gorm:"type:text" json:"motivation"`
}

func (Application) TableName() string {
	return "volunteer_applications"
}
