package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-otp-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, htmlBody string) error {
	return m.Called(to, subject, htmlBody).Error(0)
}

type mockSMSSender struct{ mock.Mock }

func (m *mockSMSSender) SendSMS(ctx context.Context, to, msg string) error {
	return m.Called(ctx, to, msg).Error(0)
}

type mockSink struct{ mock.Mock }

func (m *mockSink) Archive(ctx context.Context, key string, payload interface{}) error {
	return m.Called(ctx, key, payload).Error(0)
}

var testBranding = Branding{AppName: "5210EG", AppColor: "#2D3142", LogoURL: "https://example.com/logo.png"}

func TestSendPasswordResetCode_RendersCodeAndBranding(t *testing.T) {
	ml := &mockMailer{}
	var body, subject string
	ml.On("SendEmail", "a@x.com", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			subject = args.String(1)
			body = args.String(2)
		}).Return(nil)

	svc := NewService(ml, nil, nil, testBranding)
	err := svc.SendPasswordResetCode(context.Background(), "a@x.com", "007421")

	require.NoError(t, err)
	assert.Contains(t, subject, "5210EG")
	assert.Contains(t, body, "007421")
	assert.Contains(t, body, "#2D3142")
	assert.Contains(t, body, "10 minutes")
}

func TestSendVerificationCode_DefaultsDisplayName(t *testing.T) {
	ml := &mockMailer{}
	var body string
	ml.On("SendEmail", "b@x.com", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { body = args.String(2) }).Return(nil)

	svc := NewService(ml, nil, nil, testBranding)
	err := svc.SendVerificationCode(context.Background(), "b@x.com", "", "123456")

	require.NoError(t, err)
	assert.Contains(t, body, "Hello Hero")
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "15 minutes")
}

func TestSendVerificationCode_UsesGivenName(t *testing.T) {
	ml := &mockMailer{}
	var body string
	ml.On("SendEmail", "b@x.com", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { body = args.String(2) }).Return(nil)

	svc := NewService(ml, nil, nil, testBranding)
	require.NoError(t, svc.SendVerificationCode(context.Background(), "b@x.com", "Alice", "123456"))
	assert.Contains(t, body, "Hello Alice")
}

func TestSendPasswordResetCode_MailerFailureSurfaced(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := NewService(ml, nil, nil, testBranding)
	err := svc.SendPasswordResetCode(context.Background(), "a@x.com", "111111")
	require.Error(t, err)
}

func TestSendWelcome_FailureIsDeadLettered(t *testing.T) {
	ml := &mockMailer{}
	sink := &mockSink{}
	ml.On("SendEmail", "a@x.com", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	sink.On("Archive", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "welcome/") && strings.HasSuffix(key, ".json")
	}), mock.Anything).Return(nil)

	svc := NewService(ml, nil, sink, testBranding)
	// Must not panic or surface the failure.
	svc.SendWelcome(context.Background(), "a@x.com", "Alice")

	sink.AssertExpectations(t)
}

func TestSendWelcome_NilSinkDoesNotPanic(t *testing.T) {
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := NewService(ml, nil, nil, testBranding)
	svc.SendWelcome(context.Background(), "a@x.com", "")
}

func TestSendPasswordChangedAlert_EmailAndSMS(t *testing.T) {
	ml := &mockMailer{}
	sms := &mockSMSSender{}
	phone := "+15551234567"
	acct := &domain.Account{UserID: "u1", Email: "a@x.com", DisplayName: "Alice", Phone: &phone}

	ml.On("SendEmail", "a@x.com", "Security Alert: Password Changed", mock.Anything).Return(nil)
	sms.On("SendSMS", mock.Anything, phone, mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "5210EG")
	})).Return(nil)

	svc := NewService(ml, sms, nil, testBranding)
	svc.SendPasswordChangedAlert(context.Background(), acct)

	ml.AssertExpectations(t)
	sms.AssertExpectations(t)
}

func TestSendPasswordChangedAlert_NoPhoneSkipsSMS(t *testing.T) {
	ml := &mockMailer{}
	sms := &mockSMSSender{}
	acct := &domain.Account{UserID: "u1", Email: "a@x.com"}

	ml.On("SendEmail", "a@x.com", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(ml, sms, nil, testBranding)
	svc.SendPasswordChangedAlert(context.Background(), acct)

	sms.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendPasswordChangedAlert_SMSFailureIsDeadLettered(t *testing.T) {
	ml := &mockMailer{}
	sms := &mockSMSSender{}
	sink := &mockSink{}
	phone := "+15551234567"
	acct := &domain.Account{UserID: "u1", Email: "a@x.com", Phone: &phone}

	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sms.On("SendSMS", mock.Anything, phone, mock.Anything).Return(errors.New("sns down"))
	sink.On("Archive", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "password_changed_sms/")
	}), mock.Anything).Return(nil)

	svc := NewService(ml, sms, sink, testBranding)
	svc.SendPasswordChangedAlert(context.Background(), acct)

	sink.AssertExpectations(t)
}
