package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestIssueToken_ClaimsAndExpiry(t *testing.T) {
	const secret = "test-secret"

	tokenStr, err := IssueToken(secret, "alice", "administrador")
	assert.NoError(t, err)

	claims, err := ValidateToken(secret, tokenStr)
	assert.NoError(t, err)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "administrador", claims.Role)

	// expiry must be 2 hours after issuance
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
	assert.Equal(t, TokenExpiry, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenStr, err := IssueToken("secret-A", "alice", "comum")
	assert.NoError(t, err)

	_, err = ValidateToken("secret-B", tokenStr)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	const secret = "test-secret"

	claims := Claims{
		Name: "bob",
		Role: "comum",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = ValidateToken(secret, expired)
	assert.Error(t, err)
}

func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	// alg=none style tokens must not pass
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Name: "eve"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = ValidateToken("test-secret", unsigned)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("test-secret", "not.a.token")
	assert.Error(t, err)
}
