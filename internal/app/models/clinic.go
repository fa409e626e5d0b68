package models

import (
	"dentaflow-service/internal/pkg/dto/responses"
	"time"
)

type Clinic struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	LogoURL     string    `json:"logo_url"`
	IsActive    bool      `json:"is_active"`
	CurrentPlan string    `json:"current_plan"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Clinic) ConvertToResponse() *responses.Clinic {
	return &responses.Clinic{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		LogoURL:     c.LogoURL,
		IsActive:    c.IsActive,
		CurrentPlan: c.CurrentPlan,
		CreatedAt:   c.CreatedAt,
	}
}
