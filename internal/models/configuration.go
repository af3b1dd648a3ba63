package models

import "time"

// Configuration holds the single-row application settings record.
type Configuration struct {
	ID              string    `db:"id" json:"id"`
	BackgroundColor string    `db:"background_color" json:"background_color"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
