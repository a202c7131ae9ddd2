package otp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-otp-api/internal/domain"
	"github.com/go-otp-api/internal/pkg/passcode"
	"golang.org/x/crypto/bcrypt"
)

// Per-flow code lifetimes.
const (
	passwordResetTTL     = 10 * time.Minute
	emailVerificationTTL = 15 * time.Minute
)

const fieldPasswordHash = "password_hash"
const fieldEmailConfirmed = "email_confirmed"

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code" validate:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type EmailVerificationRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"name"`
}

// VerificationStore holds at most one pending code per (email, flow) pair.
// Put replaces any existing record for the pair wholesale.
type VerificationStore interface {
	Put(ctx context.Context, v *domain.VerificationRecord) error
	Get(ctx context.Context, email, flow string) (*domain.VerificationRecord, error)
	Delete(ctx context.Context, email, flow string) error
}

// AccountStore is the credential store mutated on successful flow completion.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

// Notifier delivers the codes and the post-change security alert.
type Notifier interface {
	SendPasswordResetCode(ctx context.Context, email, code string) error
	SendVerificationCode(ctx context.Context, email, displayName, code string) error
	SendPasswordChangedAlert(ctx context.Context, acct *domain.Account)
}

// Service is the flow controller for the two OTP flows. Both flows share the
// same issue/verify shape but differ in namespace, TTL, error labels, and the
// side effect applied on completion.
type Service interface {
	RequestPasswordReset(ctx context.Context, req PasswordResetRequest) error
	VerifyPasswordResetCode(ctx context.Context, req VerifyCodeRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	RequestEmailVerification(ctx context.Context, req EmailVerificationRequest) error
	VerifyEmail(ctx context.Context, req VerifyCodeRequest) error
}

// ServiceDeps bundles the collaborators for NewService.
type ServiceDeps struct {
	Verifications VerificationStore
	Accounts      AccountStore
	Notifier      Notifier
}

type service struct {
	verifications VerificationStore
	accounts      AccountStore
	notifier      Notifier
}

func NewService(deps ServiceDeps) Service {
	return &service{
		verifications: deps.Verifications,
		accounts:      deps.Accounts,
		notifier:      deps.Notifier,
	}
}

// issue generates a fresh code, persists it under (email, flow), and returns
// it for delivery. Any prior pending code for the pair is replaced.
func (s *service) issue(ctx context.Context, email, flow string, ttl time.Duration) (string, error) {
	code, err := passcode.Generate()
	if err != nil {
		return "", fmt.Errorf("generate code: %w", domain.ErrInternal)
	}
	rec := &domain.VerificationRecord{
		Email:     email,
		Flow:      flow,
		Code:      code,
		ExpiresAt: time.Now().Add(ttl).Unix(),
	}
	if err := s.verifications.Put(ctx, rec); err != nil {
		return "", fmt.Errorf("persist code: %w", domain.ErrInternal)
	}
	return code, nil
}

func (s *service) RequestPasswordReset(ctx context.Context, req PasswordResetRequest) error {
	if req.Email == "" {
		return fmt.Errorf("email required: %w", domain.ErrInvalidArgument)
	}
	code, err := s.issue(ctx, req.Email, domain.FlowPasswordReset, passwordResetTTL)
	if err != nil {
		return err
	}
	if err := s.notifier.SendPasswordResetCode(ctx, req.Email, code); err != nil {
		// The record is left in place; the next request overwrites it.
		return fmt.Errorf("send reset code: %w", domain.ErrInternal)
	}
	return nil
}

// VerifyPasswordResetCode is the non-destructive plausibility check a client
// runs before it collects the new password. It never deletes the record —
// deletion happens in ResetPassword, the flow's consuming step.
func (s *service) VerifyPasswordResetCode(ctx context.Context, req VerifyCodeRequest) error {
	rec, err := s.verifications.Get(ctx, req.Email, domain.FlowPasswordReset)
	if err != nil || rec.Code != req.Code {
		return fmt.Errorf("invalid code: %w", domain.ErrNotFound)
	}
	if time.Now().Unix() > rec.ExpiresAt {
		// The stale record stays; it is replaced by the next issuance or
		// collected by the table TTL.
		return fmt.Errorf("code expired: %w", domain.ErrDeadlineExceeded)
	}
	return nil
}

// ResetPassword consumes the password-reset flow. It trusts that the caller
// already passed VerifyPasswordResetCode and does not re-check the code.
func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	acct, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("account lookup: %w", domain.ErrInternal)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", domain.ErrInternal)
	}
	if err := s.accounts.Update(ctx, acct.UserID, map[string]interface{}{fieldPasswordHash: string(hash)}); err != nil {
		return fmt.Errorf("update password: %w", domain.ErrInternal)
	}
	if err := s.verifications.Delete(ctx, req.Email, domain.FlowPasswordReset); err != nil {
		slog.Warn("failed to delete password-reset record", "email", req.Email, "err", err)
	}
	s.notifier.SendPasswordChangedAlert(ctx, acct)
	return nil
}

func (s *service) RequestEmailVerification(ctx context.Context, req EmailVerificationRequest) error {
	if req.Email == "" {
		return fmt.Errorf("email required: %w", domain.ErrInvalidArgument)
	}
	code, err := s.issue(ctx, req.Email, domain.FlowEmailVerification, emailVerificationTTL)
	if err != nil {
		return err
	}
	if err := s.notifier.SendVerificationCode(ctx, req.Email, req.DisplayName, code); err != nil {
		return fmt.Errorf("send verification code: %w", domain.ErrInternal)
	}
	return nil
}

// VerifyEmail consumes the email-verification flow: on a matching, unexpired
// code it marks the account confirmed and deletes the record in one step.
func (s *service) VerifyEmail(ctx context.Context, req VerifyCodeRequest) error {
	rec, err := s.verifications.Get(ctx, req.Email, domain.FlowEmailVerification)
	if err != nil || rec.Code != req.Code {
		return fmt.Errorf("invalid code: %w", domain.ErrPermissionDenied)
	}
	if time.Now().Unix() > rec.ExpiresAt {
		return fmt.Errorf("code expired: %w", domain.ErrDeadlineExceeded)
	}
	acct, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("account lookup: %w", domain.ErrInternal)
	}
	if err := s.accounts.Update(ctx, acct.UserID, map[string]interface{}{fieldEmailConfirmed: true}); err != nil {
		return fmt.Errorf("mark email confirmed: %w", domain.ErrInternal)
	}
	if err := s.verifications.Delete(ctx, req.Email, domain.FlowEmailVerification); err != nil {
		slog.Warn("failed to delete email-verification record", "email", req.Email, "err", err)
	}
	return nil
}
