package domain

import "time"

// Account is the credential-store view of a user. The OTP flows only ever
// mutate PasswordHash (reset consume) and EmailConfirmed (email verify);
// everything else is owned by the identity provider.
type Account struct {
	UserID         string     `json:"id" dynamodbav:"user_id"`
	Email          string     `json:"email" dynamodbav:"email"`
	DisplayName    string     `json:"display_name" dynamodbav:"display_name"`
	Phone          *string    `json:"phone,omitempty" dynamodbav:"phone"`
	PasswordHash   string     `json:"-" dynamodbav:"password_hash"`
	EmailConfirmed bool       `json:"email_confirmed" dynamodbav:"email_confirmed"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt      time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt      time.Time  `json:"updated" dynamodbav:"updated_at"`
}
