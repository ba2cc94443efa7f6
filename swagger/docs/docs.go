package docs

// swagger:response
type Error struct {
	// The error message
	//in: body
	Body struct {
		Error string `json:"error"`
	}
}

// swagger:response
type Okay struct {
	//in: body
	Body string
}

// swagger:response
type Health struct {
	//in: body
	Body struct {
		Status string `json:"status"`
	}
}
