package queries

const (
	medicalImageColumns = `id, clinic_id, patient_id, uploaded_by, kind, object_key, content_type, size_bytes, notes, analysis_result, analyzed_at, created_at`

	InsertMedicalImage = `
		INSERT INTO medical_images (clinic_id, patient_id, uploaded_by, kind, object_key, content_type, size_bytes, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	GetMedicalImageByID = `
		SELECT ` + medicalImageColumns + `
		FROM medical_images
		WHERE clinic_id = $1 AND id = $2 AND is_active = TRUE`

	ListMedicalImagesByPatientID = `
		SELECT ` + medicalImageColumns + `
		FROM medical_images
		WHERE clinic_id = $1 AND patient_id = $2 AND is_active = TRUE
		ORDER BY created_at DESC`

	UpdateMedicalImageAnalysis = `
		UPDATE medical_images
		SET analysis_result = $3, analyzed_at = $4
		WHERE clinic_id = $1 AND id = $2`
)
