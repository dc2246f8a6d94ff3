package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// Booking is the API shape of a reservation request
type Booking struct {
	ID              string     `json:"id"`
	BookingType     string     `json:"bookingType" validate:"required,oneof=accommodation itinerary"`
	ItemID          string     `json:"itemId" validate:"required,max=36"`
	ItemName        string     `json:"itemName" validate:"required,max=255"`
	FullName        string     `json:"fullName" validate:"required,max=255"`
	Email           string     `json:"email" validate:"required,email"`
	Phone           string     `json:"phone" validate:"max=50"`
	CheckInDate     string     `json:"checkInDate" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string     `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
	NumberOfDays    int        `json:"numberOfDays" validate:"gte=0"`
	Adults          int        `json:"adults" validate:"gte=1"`
	Children        int        `json:"children" validate:"gte=0"`
	SpecialRequests string     `json:"specialRequests" validate:"max=5000"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

type Patch struct {
	BookingType     *string `json:"bookingType" validate:"omitempty,oneof=accommodation itinerary"`
	ItemID          *string `json:"itemId" validate:"omitempty,min=1,max=36"`
	ItemName        *string `json:"itemName" validate:"omitempty,min=1,max=255"`
	FullName        *string `json:"fullName" validate:"omitempty,min=1,max=255"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone" validate:"omitempty,max=50"`
	CheckInDate     *string `json:"checkInDate" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string `json:"checkOutDate" validate:"omitempty,datetime=2006-01-02"`
	NumberOfDays    *int    `json:"numberOfDays" validate:"omitempty,gte=0"`
	Adults          *int    `json:"adults" validate:"omitempty,gte=1"`
	Children        *int    `json:"children" validate:"omitempty,gte=0"`
	SpecialRequests *string `json:"specialRequests" validate:"omitempty,max=5000"`
}

var ErrCheckOutBeforeCheckIn = errors.New("checkOutDate must not be before checkInDate")

// DaysBetween counts calendar days from check-in to check-out
func DaysBetween(checkIn, checkOut string) (int, error) {
	in, err := now.ParseInLocation(time.UTC, checkIn)
	if err != nil {
		return 0, fmt.Errorf("invalid checkInDate: %w", err)
	}
	out, err := now.ParseInLocation(time.UTC, checkOut)
	if err != nil {
		return 0, fmt.Errorf("invalid checkOutDate: %w", err)
	}

	start := now.With(in).BeginningOfDay()
	end := now.With(out).BeginningOfDay()
	if end.Before(start) {
		return 0, ErrCheckOutBeforeCheckIn
	}
	return int(end.Sub(start).Hours() / 24), nil
}

// Normalize checks the stay dates and fills NumberOfDays when the
// client did not send it. A client-supplied value is kept as is.
func (b *Booking) Normalize() error {
	days, err := DaysBetween(b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return err
	}
	if b.NumberOfDays == 0 {
		b.NumberOfDays = days
	}
	return nil
}

// NormalizePatch checks the stay dates b would have after p is applied.
// When p moves a date without sending numberOfDays, the count is derived
// again from the new dates.
func (b Booking) NormalizePatch(p *Patch) error {
	if p.CheckInDate == nil && p.CheckOutDate == nil {
		return nil
	}
	checkIn, checkOut := b.CheckInDate, b.CheckOutDate
	if p.CheckInDate != nil {
		checkIn = *p.CheckInDate
	}
	if p.CheckOutDate != nil {
		checkOut = *p.CheckOutDate
	}

	days, err := DaysBetween(checkIn, checkOut)
	if err != nil {
		return err
	}
	if p.NumberOfDays == nil {
		p.NumberOfDays = &days
	}
	return nil
}
