package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendLoginOTP mails a one-time login code
func (s *EmailService) SendLoginOTP(toEmail, code string, expiryMinutes int) error {
	htmlContent, err := s.renderLoginOTPEmail(code, expiryMinutes)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Your Login Code - Elite Sports POS"
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// renderLoginOTPEmail renders the login code email template
func (s *EmailService) renderLoginOTPEmail(code string, expiryMinutes int) (string, error) {
	tmpl, err := template.New("login_otp").Parse(loginOTPTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Code          string
		ExpiryMinutes int
		AppName       string
	}{
		Code:          code,
		ExpiryMinutes: expiryMinutes,
		AppName:       "Elite Sports POS",
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// loginOTPTemplate is the HTML template for one-time login code emails
const loginOTPTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Your Login Code</title>
</head>
<body style="margin:0;padding:0;background-color:#f4f4f7;font-family:Arial,Helvetica,sans-serif;">
    <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
        <tr>
            <td align="center" style="padding:32px 16px;">
                <table role="presentation" width="480" cellpadding="0" cellspacing="0" style="background:#ffffff;border-radius:8px;padding:32px;">
                    <tr>
                        <td align="center">
                            <h2 style="color:#1f2937;margin:0 0 16px;">{{.AppName}}</h2>
                            <p style="color:#4b5563;margin:0 0 24px;">Use this code to finish signing in:</p>
                            <p style="font-size:32px;letter-spacing:8px;font-weight:bold;color:#111827;margin:0 0 24px;">{{.Code}}</p>
                            <p style="color:#6b7280;font-size:13px;margin:0;">
                                This code expires in {{.ExpiryMinutes}} minutes. If you did not try to sign in, you can ignore this email.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
