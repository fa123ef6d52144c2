package models

import "time"

// Image is one saved transformation of an uploaded asset. Config accumulates
// the merged transformation parameters over the image's lifetime.
type Image struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	TransformationType string         `json:"transformation_type"`
	PublicID           string         `json:"public_id"`
	SecureURL          string         `json:"secure_url"`
	Width              *int           `json:"width,omitempty"`
	Height             *int           `json:"height,omitempty"`
	Config             map[string]any `json:"config,omitempty"`
	TransformationURL  *string        `json:"transformation_url,omitempty"`
	AspectRatio        *string        `json:"aspect_ratio,omitempty"`
	Color              *string        `json:"color,omitempty"`
	Prompt             *string        `json:"prompt,omitempty"`
	AuthorID           string         `json:"author_id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}
