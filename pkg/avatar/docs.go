package avatar

// swagger:parameters uploadAvatar
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
	// in: formData
	// required: true
	// swagger:file
	Avatar []byte `json:"avatar"`
}

// swagger:parameters getAvatar
type _ struct {
	// in: path
	// required: true
	Filename string `json:"filename"`
}

// swagger:response UploadResponse
type _ struct {
	//in: body
	_ uploadResponse
}

// swagger:response Avatar
type _ struct {
	// in: body
	// swagger:file
	_ []byte
}
