package user

import (
	"context"
	"net/http"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/internal/handler"
	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/fairfinder/fair-finder/pkg/token"
	"github.com/fairfinder/fair-finder/pkg/validation"
	"github.com/gin-gonic/gin"
)

func NewHandler(userService userService, tokenService tokenService) Handler {
	return Handler{
		userService,
		tokenService,
	}
}

type Handler struct {
	userService  userService
	tokenService tokenService
}

type userService interface {
	SignUp(ctx context.Context, input SignUpInput) (*model.User, error)
	SignIn(ctx context.Context, email string, password string) (*model.User, error)
	FindById(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type tokenService interface {
	GetTokens(user *model.User) (*token.Tokens, error)
}

type signUpRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Birthday  string `json:"birthday"`
}

// SignUp user
func (h Handler) SignUp(c *gin.Context) {
	// swagger:route POST /register signUp
	//
	// Register user
	//
	// Register a user. The email must not be registered already. Birthday is given as YYYY-MM-DD.
	//
	// responses:
	//   201: User
	//   400: Error
	//   409: Error
	//   500: Error
	var request signUpRequest
	if err := handler.SchemaBinder(c, validation.Register, &request); err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	_, err := h.userService.FindByEmail(ctx, request.Email)
	if err == nil {
		_ = c.Error(errdef.NewDuplicated("Email already registered: %q", request.Email))
		return
	}
	if !errdef.IsNotFound(err) {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.SignUp(ctx, SignUpInput(request))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignIn user
func (h Handler) SignIn(c *gin.Context) {
	// swagger:route POST /login signIn
	//
	// Sign in
	//
	// Sign in with email and password and get an access and a refresh token. Both carry the id of the user in the user_id claim.
	//
	// responses:
	//   200: Tokens
	//   400: Error
	//   401: Error
	//   415: Error
	var request signInRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.SignIn(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	tokens, err := h.tokenService.GetTokens(user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// FindById user
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /get_user findUserById
	//
	// Find user
	//
	// Find a user by its id. An empty object is returned if no such user exists.
	//
	// responses:
	//	200: User
	//	400: Error
	id, ok := handler.GetQueryParameter(c, "user_id")
	if !ok {
		return
	}

	user, err := h.userService.FindById(c.Request.Context(), id)
	if err != nil {
		if errdef.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// FindAll user
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /get_users findAllUsers
	//
	// Find users
	//
	// Find all users
	//
	// responses:
	//	200: []User
	users, err := h.userService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, users)
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Birthday  *string `json:"birthday"`
}

// Update user
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /update_user/{id} updateUser
	//
	// Update user
	//
	// Update first name, last name and birthday of a user. Fields left out are not changed.
	//
	// responses:
	//	200: User
	//	400: Error
	//	404: Error
	//	415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request updateUserRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, UpdateInput(request))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete user
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /delete_user/{id} deleteUser
	//
	// Delete user
	//
	// Delete a user along with their events and participations. Users can only delete themselves.
	//
	// Security:
	//	bearerAuth:
	//
	// Responses:
	//	202:
	//	401: Error
	//	403: Error
	//	404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	userID, err := handler.GetUserIDFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	_, err = h.userService.FindById(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if userID != id {
		_ = c.Error(errdef.NewForbidden("users can only delete themselves"))
		return
	}

	err = h.userService.Delete(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusAccepted)
}
