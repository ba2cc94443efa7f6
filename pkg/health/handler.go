package health

import (
	"context"
	"net/http"

	"github.com/fairfinder/fair-finder/internal/handler"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(repository testRepository) Handler {
	return Handler{repository: repository}
}

type testRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindAll(ctx context.Context) ([]model.Test, error)
}

type Handler struct {
	repository testRepository
}

// Home health
func Home(c *gin.Context) {
	// swagger:route GET / home
	//
	// Check that the service answers
	//
	// responses:
	//	200: Okay
	c.String(http.StatusOK, "Okay")
}

// Health health
func Health(c *gin.Context) {
	// swagger:route GET /health health
	//
	// Service health status
	//
	// responses:
	//	200: Health
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}

type testPostRequest struct {
	Text string `json:"text" binding:"required,max=100"`
}

// TestPost health
func (h Handler) TestPost(c *gin.Context) {
	// swagger:route POST /test_post testPost
	//
	// Store a diagnostic record
	//
	// responses:
	//	200: TestStatus
	//	400: Error
	var request testPostRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.repository.Create(c.Request.Context(), &model.Test{TestField: request.Text}); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "okay"})
}

// TestGet health
func (h Handler) TestGet(c *gin.Context) {
	// swagger:route GET /test_get testGet
	//
	// List diagnostic records
	//
	// responses:
	//	200: []Test
	tests, err := h.repository.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, tests)
}
