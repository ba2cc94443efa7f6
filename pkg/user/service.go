package user

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/model"
	"gorm.io/datatypes"
)

func NewService(repository userRepository) *Service {
	return &Service{
		repository: repository,
	}
}

type userRepository interface {
	create(ctx context.Context, u *model.User) error
	findAll(ctx context.Context) ([]*model.User, error)
	findByEmail(ctx context.Context, email string) (*model.User, error)
	findById(ctx context.Context, id uint) (*model.User, error)
	delete(ctx context.Context, id uint) error
	update(ctx context.Context, user *model.User, columns ...string) (*model.User, error)
}

type Service struct {
	repository userRepository
}

type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Birthday  string
}

func (s Service) SignUp(ctx context.Context, input SignUpInput) (*model.User, error) {
	birthday, err := parseBirthday(input.Birthday)
	if err != nil {
		return nil, err
	}

	err = checkLength(
		field{"first_name", input.FirstName, model.MaxFirstNameLength},
		field{"last_name", input.LastName, model.MaxLastNameLength},
		field{"email", input.Email, model.MaxEmailLength},
	)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %s", err)
	}

	user := &model.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
		Birthday:  birthday,
	}

	err = s.repository.create(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s Service) SignIn(ctx context.Context, email string, password string) (*model.User, error) {
	const unauthorizedError = "invalid email and password combination"

	user, err := s.repository.findByEmail(ctx, email)
	if err != nil {
		if errdef.IsNotFound(err) {
			return nil, errdef.NewUnauthorized(unauthorizedError)
		}
		return nil, err
	}

	match, err := comparePasswords(user.Password, password)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %s", err)
	}

	if !match {
		return nil, errdef.NewUnauthorized(unauthorizedError)
	}

	return user, nil
}

func (s Service) FindAll(ctx context.Context) ([]*model.User, error) {
	return s.repository.findAll(ctx)
}

func (s Service) FindById(ctx context.Context, id uint) (*model.User, error) {
	return s.repository.findById(ctx, id)
}

func (s Service) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repository.findByEmail(ctx, email)
}

// Delete removes the user. Their events and participations are removed by the database.
func (s Service) Delete(ctx context.Context, id uint) error {
	return s.repository.delete(ctx, id)
}

// UpdateInput holds the fields to change. Nil fields are left untouched.
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Birthday  *string
}

func (s Service) Update(ctx context.Context, id uint, input UpdateInput) (*model.User, error) {
	user, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	var columns []string
	if input.FirstName != nil {
		if err := checkLength(field{"firstName", *input.FirstName, model.MaxFirstNameLength}); err != nil {
			return nil, err
		}
		user.FirstName = *input.FirstName
		columns = append(columns, "FirstName")
	}

	if input.LastName != nil {
		if err := checkLength(field{"lastName", *input.LastName, model.MaxLastNameLength}); err != nil {
			return nil, err
		}
		user.LastName = *input.LastName
		columns = append(columns, "LastName")
	}

	if input.Birthday != nil {
		birthday, err := parseBirthday(*input.Birthday)
		if err != nil {
			return nil, err
		}
		user.Birthday = birthday
		columns = append(columns, "Birthday")
	}

	if len(columns) == 0 {
		return user, nil
	}

	return s.repository.update(ctx, user, columns...)
}

// SetProfilePicture stores the URL of the user's uploaded avatar.
func (s Service) SetProfilePicture(ctx context.Context, id uint, url string) (*model.User, error) {
	user, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ProfilePicture = &url
	return s.repository.update(ctx, user, "ProfilePicture")
}

func parseBirthday(s string) (datatypes.Date, error) {
	birthday, err := model.ParseBirthday(s)
	if err != nil {
		return datatypes.Date{}, errdef.NewBadRequest("Invalid birthday format. <YYYY-MM-DD>.")
	}
	return birthday, nil
}

type field struct {
	name  string
	value string
	max   int
}

func checkLength(fields ...field) error {
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.max {
			return errdef.NewBadRequest("%s must be at most %d characters", f.name, f.max)
		}
	}
	return nil
}
