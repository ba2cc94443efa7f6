package participation

import "github.com/fairfinder/fair-finder/pkg/model"

// swagger:parameters upsertParticipation
type _ struct {
	// Save participation request
	// in: body
	// required: true
	Body upsertParticipationRequest
}

// swagger:parameters findParticipation
type _ struct {
	// in: query
	// required: true
	UserID uint `json:"user_id"`
	// in: query
	// required: true
	EventID uint `json:"event_id"`
}

// swagger:parameters findParticipationsByUser findParticipationsByEvent
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:response Participation
type _ struct {
	//in: body
	_ model.Participation
}

// swagger:response DeleteAllResult
type _ struct {
	//in: body
	_ deleteAllResponse
}
