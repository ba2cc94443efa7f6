package event

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/internal/handler"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/fairfinder/fair-finder/pkg/validation"
	"github.com/gin-gonic/gin"
)

func NewHandler(service eventService) Handler {
	return Handler{service}
}

type Handler struct {
	service eventService
}

type eventService interface {
	Create(ctx context.Context, input CreateInput) (*model.Event, error)
	FindById(ctx context.Context, id uint) (*model.Event, error)
	FindAll(ctx context.Context) ([]model.Event, error)
}

type createEventRequest struct {
	OwnerID     uint            `json:"owner_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	Geometry    json.RawMessage `json:"geometry"`
	Color       string          `json:"color"`
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /post_event createEvent
	//
	// Create event
	//
	// Create an event. Start and end are ISO-8601 timestamps and geometry is a GeoJSON geometry. On success the client is redirected to the list of events.
	//
	// responses:
	//   302:
	//   400: Error
	var request createEventRequest
	if err := handler.SchemaBinder(c, validation.Event, &request); err != nil {
		_ = c.Error(err)
		return
	}

	_, err := h.service.Create(c.Request.Context(), CreateInput{
		OwnerID:     request.OwnerID,
		Title:       request.Title,
		Description: request.Description,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		Geometry:    request.Geometry,
		Color:       request.Color,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.RedirectToSibling(c, "get_events")
}

// FindAll event
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /get_events findAllEvents
	//
	// Find events
	//
	// Find all events. Geometries are rendered as GeoJSON.
	//
	// responses:
	//   200: []Event
	events, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// FindById event
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /get_event findEventById
	//
	// Find event
	//
	// Find an event by its id. An empty object is returned if no such event exists.
	//
	// responses:
	//   200: Event
	//   400: Error
	id, ok := handler.GetQueryParameter(c, "event_id")
	if !ok {
		return
	}

	event, err := h.service.FindById(c.Request.Context(), id)
	if err != nil {
		if errdef.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}
