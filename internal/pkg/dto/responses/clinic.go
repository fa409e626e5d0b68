package responses

import "time"

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
}
