package destination

import "time"

// Destination is the API shape of a destination
type Destination struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" validate:"required,max=255"`
	Continental string     `json:"continental" validate:"required,max=100"`
	Country     string     `json:"country" validate:"required,max=100"`
	Region      *string    `json:"region,omitempty" validate:"omitempty,max=255"`
	Description string     `json:"description"`
	Highlights  []string   `json:"highlights" validate:"dive,required"`
	BestTime    string     `json:"bestTime" validate:"max=255"`
	ImageURL    *string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

type Patch struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Continental *string   `json:"continental" validate:"omitempty,min=1,max=100"`
	Country     *string   `json:"country" validate:"omitempty,min=1,max=100"`
	Region      *string   `json:"region" validate:"omitempty,max=255"`
	Description *string   `json:"description"`
	Highlights  *[]string `json:"highlights" validate:"omitempty,dive,required"`
	BestTime    *string   `json:"bestTime" validate:"omitempty,max=255"`
	ImageURL    *string   `json:"imageUrl" validate:"omitempty,url"`
}
