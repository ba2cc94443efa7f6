package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signedStringPrefix = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9."

func TestGenerateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(1, "secret", 12)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, signedStringPrefix))
}

func TestValidateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(7, "secret", 12)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token, "secret")
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.UserId)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 2*time.Second)
	assert.WithinDuration(t, time.Now().Add(12*time.Second), claims.ExpiresAt, 2*time.Second)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(7, "secret", 12)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "another secret")

	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken(7, "secret", -60)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "secret")

	assert.Error(t, err)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	refresh, err := GenerateRefreshToken(7, "secret", 12)
	require.NoError(t, err)

	_, err = ValidateAccessToken(refresh, "secret")

	assert.ErrorContains(t, err, "not an access token")
}

func TestValidateAccessToken_MissingUserID(t *testing.T) {
	token := jwt.New()
	require.NoError(t, token.Set(TokenTypeKey, accessTokenType))
	require.NoError(t, token.Set(jwt.ExpirationKey, time.Now().Add(time.Minute).Unix()))
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte("secret")))
	require.NoError(t, err)

	_, err = ValidateAccessToken(string(signed), "secret")

	assert.ErrorContains(t, err, "user_id not found in claims")
}

func TestGenerateRefreshToken(t *testing.T) {
	refresh, err := GenerateRefreshToken(1, "secret", 12)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(refresh, signedStringPrefix))
	token, err := jwt.Parse([]byte(refresh), jwt.WithKey(jwa.HS256, []byte("secret")))
	require.NoError(t, err)
	assert.NotEmpty(t, token.JwtID())
	assert.WithinDuration(t, time.Now().Add(12*time.Second), token.Expiration(), 2*time.Second)
	tokenType, ok := token.Get(TokenTypeKey)
	require.True(t, ok)
	assert.Equal(t, refreshTokenType, tokenType)
	userID, ok := token.Get(UserIDKey)
	require.True(t, ok)
	assert.EqualValues(t, 1, userID)
}
