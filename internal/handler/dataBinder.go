package handler

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fairfinder/fair-finder/internal/errdef"
	"github.com/fairfinder/fair-finder/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func DataBinder(c *gin.Context, req any) error {
	if c.ContentType() != "application/json" && c.ContentType() != "multipart/form-data" {
		return errdef.NewUnsupportedMediaType("%s only accepts content of type application/json or multipart/form-data", c.FullPath())
	}

	if err := c.ShouldBind(req); err != nil {
		return errdef.NewBadRequest("Error binding data: %v", err)
	}

	return nil
}

// SchemaBinder checks the JSON body against the named validation schema before decoding it into req
// and running its binding tags. The body is read regardless of the content type.
func SchemaBinder(c *gin.Context, schemaName string, req any) error {
	schema, ok := validation.Lookup(schemaName)
	if !ok {
		return fmt.Errorf("unknown validation schema %q", schemaName)
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return errdef.NewBadRequest("failed to read request body: %v", err)
	}

	payload, err := validation.Decode(body)
	if err != nil {
		return errdef.NewBadRequest("Malformed JSON data: %v", err)
	}

	if err := validation.Validate(payload, schema); err != nil {
		return err
	}

	if err := json.Unmarshal(body, req); err != nil {
		return errdef.NewBadRequest("Error binding data: %v", err)
	}

	if err := binding.Validator.ValidateStruct(req); err != nil {
		return errdef.NewBadRequest("Error binding data: %v", err)
	}

	return nil
}
