package http

import (
	"github.com/go-otp-api/internal/application/notify"
	"github.com/go-otp-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-otp-api/internal/infrastructure/jwt"
	"github.com/go-otp-api/internal/infrastructure/smtp"
	"github.com/go-otp-api/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
// SMSSender, DeadLetters and JWTProvider are optional; the router degrades
// gracefully when they are nil (no SMS alerts, log-only dead letters, open
// hook endpoint in dev).
type Deps struct {
	AccountRepo      *dynamo.AccountRepo
	VerificationRepo *dynamo.VerificationRepo
	Mailer           smtp.Mailer
	SMSSender        sns.SMSSender
	DeadLetters      notify.DeadLetterSink
	JWTProvider      *jwtinfra.Provider
}
