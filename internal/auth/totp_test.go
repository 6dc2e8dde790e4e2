package auth

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPVerifier_Disabled(t *testing.T) {
	v := NewTOTPVerifier("")
	assert.False(t, v.Enabled())
	assert.False(t, v.Verify("123456"))
}

func TestTOTPVerifier_ValidCode(t *testing.T) {
	secret, url, err := GenerateSecret("portfolio-api", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, secret)
	assert.Contains(t, url, "otpauth://")

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	v := NewTOTPVerifier(secret)
	assert.True(t, v.Enabled())
	assert.True(t, v.Verify(code))
	assert.False(t, v.Verify("000000"))
}
