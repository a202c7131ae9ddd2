package domain

// Flow namespaces for pending verification codes. Each flow keeps its own
// namespace, so the same email can hold one pending code per flow without
// the flows interfering with each other.
const (
	FlowPasswordReset     = "password_resets"
	FlowEmailVerification = "email_verifications"
)

// VerificationRecord stores a pending one-time passcode.
// PK: email, SK: flow ("password_resets" | "email_verifications").
// ExpiresAt doubles as the DynamoDB TTL attribute; expiry is always enforced
// in the application by wall-clock comparison — the table TTL only janitors
// stale rows.
type VerificationRecord struct {
	Email     string `json:"email" dynamodbav:"email"`
	Flow      string `json:"flow" dynamodbav:"flow"`
	Code      string `json:"code" dynamodbav:"code"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}
