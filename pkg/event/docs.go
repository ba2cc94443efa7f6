package event

import "github.com/fairfinder/fair-finder/pkg/model"

// swagger:parameters createEvent
type _ struct {
	// Create event request
	// in: body
	// required: true
	Body createEventRequest
}

// swagger:parameters findEventById
type _ struct {
	// in: query
	// required: true
	EventID uint `json:"event_id"`
}

// swagger:response Event
type _ struct {
	//in: body
	_ model.Event
}
