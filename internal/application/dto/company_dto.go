package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Industry string `json:"industry"`
	Location string `json:"location"`
	Website  string `json:"website" validate:"omitempty,url"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Industry *string `json:"industry"`
	Location *string `json:"location"`
	Website  *string `json:"website" validate:"omitempty,url"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	Location  string    `json:"location"`
	Website   string    `json:"website"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
