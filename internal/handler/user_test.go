package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request = request.WithContext(model.NewContextWithUserID(request.Context(), 5))

	id, err := GetUserIDFromContext(ctx)

	require.NoError(t, err)
	assert.Equal(t, uint(5), id)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetUserIDFromContext(ctx)

	assert.True(t, errdef.IsUnauthorized(err))
}
