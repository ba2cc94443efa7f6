package participation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/internal/handler"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/fairfinder/fair-finder/pkg/validation"
	"github.com/gin-gonic/gin"
)

func NewHandler(service participationService) Handler {
	return Handler{service}
}

type Handler struct {
	service participationService
}

type participationService interface {
	Upsert(ctx context.Context, userID, eventID uint, status string) (*model.Participation, error)
	Find(ctx context.Context, userID, eventID uint) (*model.Participation, error)
	FindAll(ctx context.Context) ([]model.Participation, error)
	FindByUser(ctx context.Context, userID uint) ([]model.EventParticipation, error)
	FindByEvent(ctx context.Context, eventID uint) ([]model.UserParticipation, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type upsertParticipationRequest struct {
	UserID  uint   `json:"user_id"`
	EventID uint   `json:"event_id"`
	Status  string `json:"status" binding:"participationStatus"`
}

// Upsert participation
func (h Handler) Upsert(c *gin.Context) {
	// swagger:route POST /post_participation upsertParticipation
	//
	// Save participation
	//
	// Record whether a user is going to, not going to or interested in an event. Submitting again for the same user and event replaces the status. On success the client is redirected to the list of participations.
	//
	// responses:
	//   302:
	//   400: Error
	var request upsertParticipationRequest
	if err := handler.SchemaBinder(c, validation.Participation, &request); err != nil {
		_ = c.Error(err)
		return
	}

	_, err := h.service.Upsert(c.Request.Context(), request.UserID, request.EventID, request.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.RedirectToSibling(c, "get_participations")
}

// FindAll participation
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /get_participations findAllParticipations
	//
	// Find participations
	//
	// Find all participations
	//
	// responses:
	//   200: []Participation
	participations, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, participations)
}

// Find participation
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /get_participation findParticipation
	//
	// Find participation
	//
	// Find the participation of a user in an event. An empty object is returned if there is none.
	//
	// responses:
	//   200: Participation
	//   400: Error
	userID, ok := handler.GetQueryParameter(c, "user_id")
	if !ok {
		return
	}

	eventID, ok := handler.GetQueryParameter(c, "event_id")
	if !ok {
		return
	}

	participation, err := h.service.Find(c.Request.Context(), userID, eventID)
	if err != nil {
		if errdef.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, participation)
}

// FindByUser participation
func (h Handler) FindByUser(c *gin.Context) {
	// swagger:route GET /get_user_part/{id} findParticipationsByUser
	//
	// Find participations of user
	//
	// Find the events a user participates in along with the status of each participation.
	//
	// responses:
	//   200: []EventParticipation
	//   400: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	participations, err := h.service.FindByUser(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, participations)
}

// FindByEvent participation
func (h Handler) FindByEvent(c *gin.Context) {
	// swagger:route GET /get_event_part/{id} findParticipationsByEvent
	//
	// Find participants of event
	//
	// Find the users participating in an event along with the status of each participation.
	//
	// responses:
	//   200: []UserParticipation
	//   400: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	participations, err := h.service.FindByEvent(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, participations)
}

// DeleteAll participation
func (h Handler) DeleteAll(c *gin.Context) {
	// swagger:route GET /delete deleteAllParticipations
	//
	// Delete participations
	//
	// Delete every participation.
	//
	// responses:
	//   200: DeleteAllResult
	//   500: Error
	deleted, err := h.service.DeleteAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, deleteAllResponse{
		Status:  fmt.Sprintf("%d participations deleted successfully.", deleted),
		Deleted: deleted,
	})
}

type deleteAllResponse struct {
	Status  string `json:"status"`
	Deleted int64  `json:"deleted"`
}
