package contracts

import (
	"context"
	"dentaflow-service/internal/app/models"
)

type MailerService interface {
	SendEmail(ctx context.Context, message *models.EmailMessage) error
}

type EmailSender interface {
	SendHTMLEmail(to []string, subject, htmlBody string) error
}
