package requests

type SendEmail struct {
	To      []string `json:"to" validate:"required,min=1,max=20,dive,email"`
	Subject string   `json:"subject" validate:"not_blank,max=255"`
	HTML    string   `json:"html" validate:"not_blank"`
}
