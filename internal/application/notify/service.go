package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-otp-api/internal/domain"
	"github.com/go-otp-api/internal/infrastructure/smtp"
	"github.com/go-otp-api/internal/infrastructure/sns"
	"github.com/go-otp-api/internal/pkg/id"
)

// defaultName is used when an account has no display name on file.
const defaultName = "Hero"

// Branding is the sender identity injected at construction.
type Branding struct {
	AppName  string
	AppColor string
	LogoURL  string
}

// DeadLetterSink archives undeliverable best-effort notifications.
type DeadLetterSink interface {
	Archive(ctx context.Context, key string, payload interface{}) error
}

// Service composes and delivers all outbound notifications. The two code
// senders surface delivery failures to the caller (the flow treats them as
// internal errors); the welcome and security-alert senders are best-effort
// and never return an error — failures are logged and dead-lettered.
type Service interface {
	SendPasswordResetCode(ctx context.Context, email, code string) error
	SendVerificationCode(ctx context.Context, email, displayName, code string) error
	SendWelcome(ctx context.Context, email, displayName string)
	SendPasswordChangedAlert(ctx context.Context, acct *domain.Account)
}

type service struct {
	mailer   smtp.Mailer
	sms      sns.SMSSender  // optional
	sink     DeadLetterSink // optional
	branding Branding
}

func NewService(mailer smtp.Mailer, sms sns.SMSSender, sink DeadLetterSink, b Branding) Service {
	return &service{mailer: mailer, sms: sms, sink: sink, branding: b}
}

func (s *service) data(name, code string) emailData {
	if name == "" {
		name = defaultName
	}
	return emailData{
		AppName:  s.branding.AppName,
		AppColor: s.branding.AppColor,
		LogoURL:  s.branding.LogoURL,
		Name:     name,
		Code:     code,
	}
}

func (s *service) SendPasswordResetCode(ctx context.Context, email, code string) error {
	body, err := render(resetTmpl, s.data("", code))
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Reset your password - %s", s.branding.AppName)
	return s.mailer.SendEmail(email, subject, body)
}

func (s *service) SendVerificationCode(ctx context.Context, email, displayName, code string) error {
	body, err := render(activationTmpl, s.data(displayName, code))
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Activate your account - %s", s.branding.AppName)
	return s.mailer.SendEmail(email, subject, body)
}

func (s *service) SendWelcome(ctx context.Context, email, displayName string) {
	subject := fmt.Sprintf("Welcome to %s Movement!", s.branding.AppName)
	body, err := render(welcomeTmpl, s.data(displayName, ""))
	if err == nil {
		err = s.mailer.SendEmail(email, subject, body)
	}
	if err != nil {
		slog.Error("welcome email failed", "to", email, "err", err)
		s.deadLetter(ctx, "welcome", email, subject, err)
	}
}

func (s *service) SendPasswordChangedAlert(ctx context.Context, acct *domain.Account) {
	subject := "Security Alert: Password Changed"
	body, err := render(passwordChangedTmpl, s.data(acct.DisplayName, ""))
	if err == nil {
		err = s.mailer.SendEmail(acct.Email, subject, body)
	}
	if err != nil {
		slog.Error("password-changed alert email failed", "to", acct.Email, "err", err)
		s.deadLetter(ctx, "password_changed", acct.Email, subject, err)
	}

	if s.sms == nil || acct.Phone == nil {
		return
	}
	msg := fmt.Sprintf("Your %s password was changed. If this wasn't you, secure your account now.", s.branding.AppName)
	if err := s.sms.SendSMS(ctx, *acct.Phone, msg); err != nil {
		slog.Error("password-changed alert SMS failed", "to", *acct.Phone, "err", err)
		s.deadLetter(ctx, "password_changed_sms", *acct.Phone, "", err)
	}
}

// deadLetterPayload is the JSON document archived for each failed delivery.
type deadLetterPayload struct {
	Kind    string    `json:"kind"`
	To      string    `json:"to"`
	Subject string    `json:"subject,omitempty"`
	Error   string    `json:"error"`
	At      time.Time `json:"at"`
}

func (s *service) deadLetter(ctx context.Context, kind, to, subject string, sendErr error) {
	if s.sink == nil {
		return
	}
	key := fmt.Sprintf("%s/%s.json", kind, id.New())
	payload := deadLetterPayload{
		Kind:    kind,
		To:      to,
		Subject: subject,
		Error:   sendErr.Error(),
		At:      time.Now().UTC(),
	}
	if err := s.sink.Archive(ctx, key, payload); err != nil {
		slog.Error("dead-letter archive failed", "kind", kind, "key", key, "err", err)
	}
}
