package handler

import (
	"fmt"

	"github.com/fairfinder/fair-finder/pkg/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func participationStatus(fl validator.FieldLevel) bool {
	_, err := model.ParseParticipationStatus(fl.Field().String())
	return err == nil
}

// RegisterValidation Inspiration: https://blog.logrocket.com/gin-binding-in-go-a-tutorial-with-examples/
func RegisterValidation() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("participationStatus", participationStatus)
	}
	return fmt.Errorf("error getting validation engine")
}
