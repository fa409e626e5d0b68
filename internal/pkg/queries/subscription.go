package queries

const (
	subscriptionColumns = `id, clinic_id, plan, status, amount, currency, payment_method, provider_payment_id, manual_payment_id, start_date, end_date, created_at, updated_at`

	GetCurrentSubscriptionByClinicID = `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE clinic_id = $1
		ORDER BY (status IN ('approved', 'active')) DESC, end_date DESC NULLS LAST, created_at DESC
		LIMIT 1`

	GetSubscriptionByProviderPaymentID = `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE provider_payment_id = $1
		FOR UPDATE`

	InsertSubscription = `
		INSERT INTO subscriptions (clinic_id, plan, status, amount, currency, payment_method, provider_payment_id, manual_payment_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	UpdateSubscription = `
		UPDATE subscriptions
		SET plan = $2, status = $3, amount = $4, currency = $5, payment_method = $6,
			provider_payment_id = $7, manual_payment_id = $8, start_date = $9, end_date = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
)
