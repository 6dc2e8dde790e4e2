package auth

import (
	"fmt"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTPVerifier validates time-based one-time codes against the single
// configured admin secret. An empty secret disables the second factor.
type TOTPVerifier struct {
	secret string
}

// NewTOTPVerifier creates a verifier for the configured secret
func NewTOTPVerifier(secret string) *TOTPVerifier {
	return &TOTPVerifier{secret: secret}
}

// Enabled reports whether a second factor is configured
func (v *TOTPVerifier) Enabled() bool {
	return v.secret != ""
}

// Verify checks a one-time code. Always fails when no secret is configured.
func (v *TOTPVerifier) Verify(code string) bool {
	if v.secret == "" {
		return false
	}
	return totp.Validate(code, v.secret)
}

// GenerateSecret creates a fresh TOTP key for admin provisioning.
// Returns the base32 secret and the otpauth:// provisioning URL.
func GenerateSecret(issuer, accountName string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		SecretSize:  32,
		Period:      30,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	return key.Secret(), key.URL(), nil
}
