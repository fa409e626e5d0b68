package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	HealthCheckSuccess = "service is healthy"
	HealthCheckFailed  = "service is unhealthy"

	ClinicGetSuccess          = "get clinic successfully"
	ClinicLogoUploadedSuccess = "clinic logo uploaded successfully"

	SubscriptionGetSuccess      = "get subscription successfully"
	SubscriptionCreatedSuccess  = "subscription payment created successfully"
	PaymentWebhookHandledSuccess = "payment webhook handled successfully"

	ManualPaymentSubmittedSuccess = "manual payment submitted successfully"
	ManualPaymentListSuccess      = "get manual payments successfully"
	ManualPaymentApprovedSuccess  = "manual payment approved successfully"
	ManualPaymentRejectedSuccess  = "manual payment rejected successfully"

	InvoiceCreatedSuccess         = "invoice created successfully"
	InvoiceGetSuccess             = "get invoice successfully"
	InvoiceListSuccess            = "get invoices successfully"
	InvoicePaymentRecordedSuccess = "invoice payment recorded successfully"

	PrescriptionCreatedSuccess = "prescription created successfully"
	PrescriptionGetSuccess     = "get prescription successfully"

	MedicalImageUploadedSuccess = "medical image uploaded successfully"
	MedicalImageListSuccess     = "get medical images successfully"
	MedicalImageURLSuccess      = "get medical image url successfully"
	MedicalImageAnalyzedSuccess = "medical image analyzed successfully"

	EmailQueuedSuccess = "email queued successfully"
)
