package itinerary

import "time"

// Itinerary is the API shape of a packaged tour
type Itinerary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" validate:"required,max=255"`
	Duration    string     `json:"duration" validate:"required,max=100"`
	Price       float64    `json:"price" validate:"gte=0"`
	Category    string     `json:"category" validate:"required,max=100"`
	Description string     `json:"description"`
	Highlights  []string   `json:"highlights" validate:"dive,required"`
	Includes    []string   `json:"includes" validate:"dive,required"`
	Difficulty  string     `json:"difficulty" validate:"max=50"`
	GroupSize   string     `json:"groupSize" validate:"max=50"`
	Rating      float64    `json:"rating" validate:"gte=0,lte=5"`
	ImageURL    *string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

type Patch struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Duration    *string   `json:"duration" validate:"omitempty,min=1,max=100"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Category    *string   `json:"category" validate:"omitempty,min=1,max=100"`
	Description *string   `json:"description"`
	Highlights  *[]string `json:"highlights" validate:"omitempty,dive,required"`
	Includes    *[]string `json:"includes" validate:"omitempty,dive,required"`
	Difficulty  *string   `json:"difficulty" validate:"omitempty,max=50"`
	GroupSize   *string   `json:"groupSize" validate:"omitempty,max=50"`
	Rating      *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ImageURL    *string   `json:"imageUrl" validate:"omitempty,url"`
}
