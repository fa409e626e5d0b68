package queries

const (
	InsertPrescription = `
		INSERT INTO prescriptions (clinic_id, patient_id, dentist_id, appointment_id, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, issued_at`

	InsertPrescriptionItem = `
		INSERT INTO prescription_items (prescription_id, medication, dosage, frequency, duration, instructions, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	GetPrescriptionByID = `
		SELECT pr.id, pr.clinic_id, pr.patient_id, p.full_name, pr.dentist_id, d.full_name, pr.appointment_id, pr.notes, pr.issued_at
		FROM prescriptions pr
		JOIN patients p ON p.id = pr.patient_id
		JOIN profiles d ON d.id = pr.dentist_id
		WHERE pr.clinic_id = $1 AND pr.id = $2 AND pr.is_active = TRUE`

	GetPrescriptionItemsByPrescriptionID = `
		SELECT id, prescription_id, medication, dosage, frequency, duration, instructions
		FROM prescription_items
		WHERE prescription_id = $1
		ORDER BY position ASC`
)
