package middleware

import (
	"log/slog"
	"net/http"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/fairfinder/fair-finder/pkg/token/helper"
	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

func NewAuthentication(logger *slog.Logger, secretKey string) AuthenticationMiddleware {
	return AuthenticationMiddleware{
		logger:    logger,
		secretKey: []byte(secretKey),
	}
}

type AuthenticationMiddleware struct {
	logger    *slog.Logger
	secretKey []byte
}

// TokenAuthentication requires a valid access token in the Authorization header. The id of the
// user it was issued to is stored in the request context.
func (m AuthenticationMiddleware) TokenAuthentication(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		_ = c.Error(errdef.NewUnauthorized("Missing token"))
		c.Abort()
		return
	}

	userID, err := m.parseRequest(c.Request)
	if err != nil {
		m.logger.InfoContext(c.Request.Context(), "Token not valid", "error", err)
		_ = c.Error(errdef.NewUnauthorized("Invalid token"))
		c.Abort()
		return
	}

	ctx := model.NewContextWithUserID(c.Request.Context(), userID)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// OptionalTokenAuthentication behaves like TokenAuthentication for requests carrying a valid token
// but lets every other request through anonymously.
func (m AuthenticationMiddleware) OptionalTokenAuthentication(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.Next()
		return
	}

	userID, err := m.parseRequest(c.Request)
	if err != nil {
		m.logger.DebugContext(c.Request.Context(), "Ignoring invalid token", "error", err)
		c.Next()
		return
	}

	ctx := model.NewContextWithUserID(c.Request.Context(), userID)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// Authenticator returns TokenAuthentication if required is set and OptionalTokenAuthentication
// otherwise.
func (m AuthenticationMiddleware) Authenticator(required bool) gin.HandlerFunc {
	if required {
		return m.TokenAuthentication
	}
	return m.OptionalTokenAuthentication
}

func (m AuthenticationMiddleware) parseRequest(request *http.Request) (uint, error) {
	token, err := jwt.ParseRequest(
		request,
		jwt.WithKey(jwa.HS256, m.secretKey),
		jwt.WithHeaderKey("Authorization"),
	)
	if err != nil {
		return 0, err
	}

	claims, err := helper.AccessTokenClaims(token)
	if err != nil {
		return 0, err
	}

	return claims.UserId, nil
}
