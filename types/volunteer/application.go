package volunteer

import "time"

// Application is the API shape of a volunteer-program application
type Application struct {
	ID                           string     `json:"id"`
	ProgramID                    string     `json:"programId" validate:"required,max=100"`
	FirstName                    string     `json:"firstName" validate:"required,max=255"`
	LastName                     string     `json:"lastName" validate:"required,max=255"`
	Email                        string     `json:"email" validate:"required,email"`
	Phone                        string     `json:"phone" validate:"max=50"`
	DateOfBirth                  string     `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Nationality                  string     `json:"nationality" validate:"max=100"`
	StartDate                    string     `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	Duration                     string     `json:"duration" validate:"max=100"`
	Excursions                   []string   `json:"excursions" validate:"dive,required"`
	EmergencyContactName         string     `json:"emergencyContactName" validate:"max=255"`
	EmergencyContactPhone        string     `json:"emergencyContactPhone" validate:"max=50"`
	EmergencyContactRelationship string     `json:"emergencyContactRelationship" validate:"max=100"`
	Motivation                   string     `json:"motivation" validate:"max=5000"`
	CreatedAt                    *time.Time `json:"createdAt,omitempty"`
}

type Patch struct {
	ProgramID                    *string   `json:"programId" validate:"omitempty,min=1,max=100"`
	FirstName                    *string   `json:"firstName" validate:"omitempty,min=1,max=255"`
	LastName                     *string   `json:"lastName" validate:"omitempty,min=1,max=255"`
	Email                        *string   `json:"email" validate:"omitempty,email"`
	Phone                        *string   `json:"phone" validate:"omitempty,max=50"`
	DateOfBirth                  *string   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Nationality                  *string   `json:"nationality" validate:"omitempty,max=100"`
	StartDate                    *string   `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	Duration                     *string   `json:"duration" validate:"omitempty,max=100"`
	Excursions                   *[]string `json:"excursions" validate:"omitempty,dive,required"`
	EmergencyContactName         *string   `json:"emergencyContactName" validate:"omitempty,max=255"`
	EmergencyContactPhone        *string   `json:"emergencyContactPhone" validate:"omitempty,max=50"`
	EmergencyContactRelationship *string   `json:"emergencyContactRelationship" validate:"omitempty,max=100"`
	Motivation                   *string   `json:"motivation" validate:"omitempty,max=5000"`
}
