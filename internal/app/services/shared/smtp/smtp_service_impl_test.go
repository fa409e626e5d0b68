package smtp

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"dentaflow-service/internal/app/drivers/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHTMLMessage(t *testing.T) {
	msg := string(BuildHTMLMessage("no-reply@dentaflow.test", []string{"a@clinic.test", "b@clinic.test"}, "Payment approved", "<p>ok</p>"))

	assert.True(t, strings.HasPrefix(msg, "From: no-reply@dentaflow.test\r\n"))
	assert.Contains(t, msg, "To: a@clinic.test, b@clinic.test\r\n")
	assert.Contains(t, msg, "Subject: Payment approved\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n<p>ok</p>\r\n")
}

func TestBuildHTMLMessage_EncodesNonASCIISubject(t *testing.T) {
	msg := string(BuildHTMLMessage("no-reply@dentaflow.test", []string{"a@clinic.test"}, "Төлбөр", "<p>ok</p>"))

	assert.Contains(t, msg, "Subject: =?UTF-8?q?")
}

func TestSmtpService_SendHTMLEmail(t *testing.T) {
	client := &mailer.SMTPClient{Host: "smtp.test", Port: 2525, EmailSender: "no-reply@dentaflow.test"}

	t.Run("sends to host and port", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotTo []string
		service := &smtpService{
			Client: client,
			sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
				gotAddr, gotFrom, gotTo = addr, from, to
				return nil
			},
		}

		err := service.SendHTMLEmail([]string{"owner@clinic.test"}, "Hello", "<p>hi</p>")

		require.NoError(t, err)
		assert.Equal(t, "smtp.test:2525", gotAddr)
		assert.Equal(t, "no-reply@dentaflow.test", gotFrom)
		assert.Equal(t, []string{"owner@clinic.test"}, gotTo)
	})

	t.Run("smtp failure is wrapped", func(t *testing.T) {
		service := &smtpService{
			Client: client,
			sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
				return errors.New("550 mailbox unavailable")
			},
		}

		err := service.SendHTMLEmail([]string{"owner@clinic.test"}, "Hello", "<p>hi</p>")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "smtp.test")
		assert.Contains(t, err.Error(), "550 mailbox unavailable")
	})
}
