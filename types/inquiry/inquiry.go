package inquiry

import "time"

// Inquiry is the API shape of a contact-form submission
type Inquiry struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"firstName" validate:"required,max=255"`
	LastName      string     `json:"lastName" validate:"required,max=255"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         string     `json:"phone" validate:"max=50"`
	ArrivalDate   string     `json:"arrivalDate" validate:"omitempty,datetime=2006-01-02"`
	DepartureDate string     `json:"departureDate" validate:"omitempty,datetime=2006-01-02"`
	Adults        int        `json:"adults" validate:"gte=1"`
	Children      int        `json:"children" validate:"gte=0"`
	Message       string     `json:"message" validate:"max=5000"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

type Patch struct {
	FirstName     *string `json:"firstName" validate:"omitempty,min=1,max=255"`
	LastName      *string `json:"lastName" validate:"omitempty,min=1,max=255"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=50"`
	ArrivalDate   *string `json:"arrivalDate" validate:"omitempty,datetime=2006-01-02"`
	DepartureDate *string `json:"departureDate" validate:"omitempty,datetime=2006-01-02"`
	Adults        *int    `json:"adults" validate:"omitempty,gte=1"`
	Children      *int    `json:"children" validate:"omitempty,gte=0"`
	Message       *string `json:"message" validate:"omitempty,max=5000"`
}
