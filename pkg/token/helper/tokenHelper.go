package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	UserIDKey    = "user_id"
	TokenTypeKey = "type"

	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

func GenerateAccessToken(userID uint, secretKey string, expirationInSeconds int) (string, error) {
	return generate(userID, accessTokenType, secretKey, expirationInSeconds)
}

func GenerateRefreshToken(userID uint, secretKey string, expirationInSeconds int) (string, error) {
	return generate(userID, refreshTokenType, secretKey, expirationInSeconds)
}

func generate(userID uint, tokenType string, secretKey string, expirationInSeconds int) (string, error) {
	currentTime := time.Now()
	tokenExpiration := currentTime.Add(time.Duration(expirationInSeconds) * time.Second)

	token := jwt.New()

	err := token.Set(UserIDKey, userID)
	if err != nil {
		return "", err
	}

	err = token.Set(TokenTypeKey, tokenType)
	if err != nil {
		return "", err
	}

	err = token.Set(jwt.JwtIDKey, uuid.NewString())
	if err != nil {
		return "", err
	}

	err = token.Set(jwt.ExpirationKey, tokenExpiration.Unix())
	if err != nil {
		return "", err
	}

	err = token.Set(jwt.IssuedAtKey, currentTime.Unix())
	if err != nil {
		return "", err
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(secretKey)))
	if err != nil {
		return "", err
	}

	return string(signed), nil
}

type accessTokenClaims struct {
	UserId    uint
	ID        string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

//goland:noinspection GoExportedFuncWithUnexportedType
func ValidateAccessToken(tokenString string, secretKey string) (*accessTokenClaims, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256, []byte(secretKey)),
	)
	if err != nil {
		return nil, err
	}

	return AccessTokenClaims(token)
}

// AccessTokenClaims extracts the claims of an already verified access token. Refresh tokens are
// rejected even though they may be signed with the same key.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func AccessTokenClaims(token jwt.Token) (*accessTokenClaims, error) {
	tokenType, ok := token.Get(TokenTypeKey)
	if !ok || tokenType != accessTokenType {
		return nil, errors.New("not an access token")
	}

	userId, ok := token.Get(UserIDKey)
	if !ok {
		return nil, fmt.Errorf("%s not found in claims", UserIDKey)
	}

	id, ok := userId.(float64)
	if !ok || id < 1 || id != float64(uint(id)) {
		return nil, fmt.Errorf("invalid %s claim: %v", UserIDKey, userId)
	}

	return &accessTokenClaims{
		UserId:    uint(id),
		ID:        token.JwtID(),
		ExpiresAt: token.Expiration(),
		IssuedAt:  token.IssuedAt(),
	}, nil
}
