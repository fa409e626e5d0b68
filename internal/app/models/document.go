package models

import "time"

// InvoiceDocument is everything the invoice PDF shows. GeneratedAt is stamped
// into the document so rendering the same input twice yields the same bytes.
type InvoiceDocument struct {
	Clinic      Clinic
	Invoice     Invoice
	GeneratedAt time.Time
}

type PrescriptionDocument struct {
	Clinic       Clinic
	Patient      Patient
	Prescription Prescription
	GeneratedAt  time.Time
}
