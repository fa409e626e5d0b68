package queries

const (
	manualPaymentColumns = `mp.id, mp.clinic_id, c.name, mp.submitted_by, mp.amount, mp.currency, mp.method, mp.reference, mp.note,
		mp.status, mp.rejection_reason, mp.reviewed_by, mp.reviewer_label, mp.reviewed_at, mp.created_at, mp.updated_at`

	InsertManualPayment = `
		INSERT INTO manual_payments (clinic_id, submitted_by, amount, currency, method, reference, note, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending')
		RETURNING id, status, created_at, updated_at`

	GetManualPaymentByID = `
		SELECT ` + manualPaymentColumns + `
		FROM manual_payments mp
		JOIN clinics c ON c.id = mp.clinic_id
		WHERE mp.id = $1`

	// $1 clinic filter and $2 status filter are skipped when empty.
	ListManualPayments = `
		SELECT ` + manualPaymentColumns + `
		FROM manual_payments mp
		JOIN clinics c ON c.id = mp.clinic_id
		WHERE ($1 = '' OR mp.clinic_id::text = $1)
		AND ($2 = '' OR mp.status = $2)
		ORDER BY mp.created_at DESC
		LIMIT $3 OFFSET $4`

	CountManualPayments = `
		SELECT COUNT(*)
		FROM manual_payments mp
		WHERE ($1 = '' OR mp.clinic_id::text = $1)
		AND ($2 = '' OR mp.status = $2)`

	// Only a pending payment can be reviewed; zero affected rows means it already was.
	// $4 is NULL for reviewers without a profile, $5 always names the reviewer.
	ReviewManualPayment = `
		UPDATE manual_payments
		SET status = $2, rejection_reason = $3, reviewed_by = $4, reviewer_label = $5, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'`
)
