package accommodation

import "time"

// Accommodation is the API shape of an accommodation
type Accommodation struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" validate:"required,max=255"`
	Continental string     `json:"continental" validate:"required,max=100"`
	Country     string     `json:"country" validate:"required,max=100"`
	Destination string     `json:"destination" validate:"required,max=100"`
	Category    string     `json:"category" validate:"required,max=100"`
	Description string     `json:"description"`
	Price       float64    `json:"price" validate:"gte=0"`
	Rating      float64    `json:"rating" validate:"gte=0,lte=5"`
	ImageURL    *string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Features    []string   `json:"features" validate:"dive,required"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// Patch lists the fields an update may change; nil means unchanged
type Patch struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Continental *string   `json:"continental" validate:"omitempty,min=1,max=100"`
	Country     *string   `json:"country" validate:"omitempty,min=1,max=100"`
	Destination *string   `json:"destination" validate:"omitempty,min=1,max=100"`
	Category    *string   `json:"category" validate:"omitempty,min=1,max=100"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Rating      *float64  `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ImageURL    *string   `json:"imageUrl" validate:"omitempty,url"`
	Features    *[]string `json:"features" validate:"omitempty,dive,required"`
}
