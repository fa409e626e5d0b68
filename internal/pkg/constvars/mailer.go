package constvars

const (
	EmailSubjectManualPaymentApproved = "Your payment has been approved"
	EmailSubjectManualPaymentRejected = "Your payment has been rejected"
	EmailSubjectManualPaymentReceived = "New manual payment awaiting review"
)

const (
	EmailBodyManualPaymentApproved = "<p>Hello %s,</p><p>Your payment of %s %s was approved. Your %s plan is active until %s.</p>"
	EmailBodyManualPaymentRejected = "<p>Hello %s,</p><p>Your payment of %s %s was rejected.</p><p>Reason: %s</p>"
	EmailBodyManualPaymentReceived = "<p>Clinic %s submitted a %s payment of %s %s (reference %s).</p>"
)
