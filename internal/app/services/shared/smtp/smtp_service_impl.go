package smtp

import (
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/drivers/mailer"
	"dentaflow-service/internal/pkg/exceptions"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

const htmlMessageFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n"

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpService struct {
	Client   *mailer.SMTPClient
	sendMail sendMailFunc
}

func NewSmtpService(client *mailer.SMTPClient) contracts.EmailSender {
	return &smtpService{
		Client:   client,
		sendMail: smtp.SendMail,
	}
}

func (svc *smtpService) SendHTMLEmail(to []string, subject, htmlBody string) error {
	msg := BuildHTMLMessage(svc.Client.EmailSender, to, subject, htmlBody)
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := svc.sendMail(addr, svc.Client.Auth, svc.Client.EmailSender, to, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}

// BuildHTMLMessage renders an RFC 5322 message with a UTF-8 HTML body.
// The subject is Q-encoded so non-ASCII clinic names survive.
func BuildHTMLMessage(from string, to []string, subject, htmlBody string) []byte {
	encodedSubject := mime.QEncoding.Encode("UTF-8", subject)
	return []byte(fmt.Sprintf(htmlMessageFormat, from, strings.Join(to, ", "), encodedSubject, htmlBody))
}
