package queries

const (
	invoiceColumns = `i.id, i.clinic_id, i.patient_id, p.full_name, i.invoice_number, i.currency, i.total, i.tax, i.discount, i.paid,
		i.status, i.due_date, i.notes, i.issued_at, i.updated_at`

	InsertInvoice = `
		INSERT INTO invoices (clinic_id, patient_id, invoice_number, currency, total, tax, discount, paid, status, due_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 'unpaid', $8, $9)
		RETURNING id, issued_at, updated_at`

	InsertInvoiceItem = `
		INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, position)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	GetInvoiceByID = `
		SELECT ` + invoiceColumns + `
		FROM invoices i
		JOIN patients p ON p.id = i.patient_id
		WHERE i.clinic_id = $1 AND i.id = $2 AND i.is_active = TRUE`

	GetInvoiceByIDForUpdate = GetInvoiceByID + `
		FOR UPDATE OF i`

	GetInvoiceItemsByInvoiceID = `
		SELECT id, invoice_id, description, quantity, unit_price
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position ASC`

	ListInvoicesByClinicID = `
		SELECT ` + invoiceColumns + `
		FROM invoices i
		JOIN patients p ON p.id = i.patient_id
		WHERE i.clinic_id = $1 AND i.is_active = TRUE
		ORDER BY i.issued_at DESC
		LIMIT $2 OFFSET $3`

	CountInvoicesByClinicID = `
		SELECT COUNT(*)
		FROM invoices
		WHERE clinic_id = $1 AND is_active = TRUE`

	UpdateInvoicePayment = `
		UPDATE invoices
		SET paid = $3, status = $4, updated_at = NOW()
		WHERE clinic_id = $1 AND id = $2
		RETURNING updated_at`
)
