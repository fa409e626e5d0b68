package requests

type CreatePrescription struct {
	ClinicID      string                   `json:"-"`
	DentistID     string                   `json:"-"`
	PatientID     string                   `json:"patient_id" validate:"required,uuid"`
	AppointmentID string                   `json:"appointment_id" validate:"omitempty,uuid"`
	Notes         string                   `json:"notes" validate:"max=2000"`
	Items         []CreatePrescriptionItem `json:"items" validate:"required,min=1,dive"`
}

type CreatePrescriptionItem struct {
	Medication   string `json:"medication" validate:"required,max=255"`
	Dosage       string `json:"dosage" validate:"required,max=100"`
	Frequency    string `json:"frequency" validate:"required,max=100"`
	Duration     string `json:"duration" validate:"required,max=100"`
	Instructions string `json:"instructions" validate:"max=500"`
}
