package entity

import "time"

// Company empresa cliente para la que se publican vacantes.
type Company struct {
	ID        string
	Code      string // identificador legible, ej. COM0001
	Name      string
	Industry  string
	Location  string
	Website   string
	CreatedBy string // usuario (hr o admin) que la registró
	CreatedAt time.Time
	UpdatedAt time.Time
}
