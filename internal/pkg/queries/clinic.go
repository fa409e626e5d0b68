package queries

const (
	GetClinicByID = `
		SELECT id, name, email, phone, address, COALESCE(logo_url, ''), is_active, COALESCE(current_plan, ''), created_at, updated_at
		FROM clinics
		WHERE id = $1`

	UpdateClinicLogo = `
		UPDATE clinics
		SET logo_url = $2, updated_at = NOW()
		WHERE id = $1`

	ActivateClinic = `
		UPDATE clinics
		SET is_active = TRUE, current_plan = $2, updated_at = NOW()
		WHERE id = $1`
)
