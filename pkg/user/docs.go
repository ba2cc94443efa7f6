package user

import (
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/fairfinder/fair-finder/pkg/token"
)

// swagger:parameters signUp
type _ struct {
	// SignUp request body parameter
	// in: body
	// required: true
	Body signUpRequest
}

// swagger:parameters signIn
type _ struct {
	// SignIn request body parameter
	// in: body
	// required: true
	Body signInRequest
}

// swagger:parameters findUserById
type _ struct {
	// in: query
	// required: true
	UserID uint `json:"user_id"`
}

// swagger:parameters deleteUser updateUser
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:parameters updateUser
type _ struct {
	// Update user request
	// in: body
	// required: true
	Body updateUserRequest
}

// swagger:response Tokens
type _ struct {
	//in: body
	_ token.Tokens
}

// swagger:response User
type _ struct {
	//in: body
	_ model.User
}
