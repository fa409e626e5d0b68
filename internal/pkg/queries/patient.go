package queries

const (
	GetPatientByID = `
		SELECT id, clinic_id, full_name, phone, email, date_of_birth, is_active
		FROM patients
		WHERE clinic_id = $1 AND id = $2 AND is_active = TRUE`
)
