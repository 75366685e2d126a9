package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/config"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendWelcome(to, employeeName, employeeCode, temporaryPassword string) error
	SendMessage(to, employeeName, senderName, subject, message string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	loginURL  string
	templates *template.Template
	send      func(*gomail.Message) error
	backoff   func(attempt int) time.Duration
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig, loginURL string) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	s := &emailServiceImpl{
		cfg:       cfg,
		loginURL:  loginURL,
		templates: tmpl,
		backoff: func(attempt int) time.Duration {
			return time.Duration(1<<(attempt-1)) * time.Second
		},
	}
	if cfg.Host != "" {
		dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
		s.send = func(m *gomail.Message) error { return dialer.DialAndSend(m) }
	}
	return s, nil
}

type welcomeEmailData struct {
	CompanyName       string
	EmployeeName      string
	EmployeeCode      string
	TemporaryPassword string
	LoginURL          string
}

// SendWelcome mails the onboarding credentials to a new employee.
func (s *emailServiceImpl) SendWelcome(to, employeeName, employeeCode, temporaryPassword string) error {
	data := welcomeEmailData{
		CompanyName:       s.cfg.FromName,
		EmployeeName:      employeeName,
		EmployeeCode:      employeeCode,
		TemporaryPassword: temporaryPassword,
		LoginURL:          s.loginURL,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "welcome.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Welcome to %s", s.cfg.FromName), body.String())
}

type messageEmailData struct {
	CompanyName  string
	EmployeeName string
	SenderName   string
	Message      string
}

// SendMessage relays a free-form message from the back office.
func (s *emailServiceImpl) SendMessage(to, employeeName, senderName, subject, message string) error {
	data := messageEmailData{
		CompanyName:  s.cfg.FromName,
		EmployeeName: employeeName,
		SenderName:   senderName,
		Message:      message,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "message.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, subject, body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.send == nil {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.From, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := s.send(m)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Exponential backoff: 1s, 2s
		if attempt < maxRetries {
			time.Sleep(s.backoff(attempt))
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
