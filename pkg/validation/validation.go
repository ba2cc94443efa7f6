// Package validation checks request payloads against declared field schemas before they are bound
// to typed requests. Only presence and JSON type are checked; whether a value makes sense is left to
// the services.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fairfinder/fair-finder/internal/errdef"
)

type Kind int

const (
	String Kind = iota
	Integer
	Object
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Object:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Field struct {
	Name string
	Kind Kind
}

// Schema lists the required fields of a payload in the order they are checked.
type Schema []Field

const (
	Register      = "register"
	Event         = "event"
	Participation = "participation"
)

var schemas = map[string]Schema{
	Register: {
		{"first_name", String},
		{"last_name", String},
		{"email", String},
		{"password", String},
		{"birthday", String},
	},
	Event: {
		{"owner_id", Integer},
		{"title", String},
		{"description", String},
		{"start_time", String},
		{"end_time", String},
		{"geometry", Object},
		{"color", String},
	},
	Participation: {
		{"user_id", Integer},
		{"event_id", Integer},
		{"status", String},
	},
}

// Lookup returns the schema registered under name.
func Lookup(name string) (Schema, bool) {
	schema, ok := schemas[name]
	return schema, ok
}

// Validate checks payload against schema and returns an errdef.BadRequest describing the first
// missing or mismatched field. payload must come from [Decode]; integers are only recognized as
// [json.Number].
func Validate(payload any, schema Schema) error {
	data, ok := payload.(map[string]any)
	if !ok || data == nil {
		return errdef.NewBadRequest("Missing JSON data.")
	}

	for _, field := range schema {
		value, ok := data[field.Name]
		if !ok {
			return errdef.NewBadRequest("Missing field: %s", field.Name)
		}

		if !matches(value, field.Kind) {
			return errdef.NewBadRequest("Invalid field for %s. Expected %s", field.Name, field.Kind)
		}
	}

	return nil
}

// Decode decodes a JSON body keeping numbers as [json.Number] so integers can be told apart from
// fractions.
func Decode(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var payload any

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func matches(value any, kind Kind) bool {
	switch kind {
	case String:
		_, ok := value.(string)
		return ok
	case Integer:
		n, ok := value.(json.Number)
		if !ok {
			return false
		}
		_, err := n.Int64()
		return err == nil
	case Object:
		m, ok := value.(map[string]any)
		return ok && m != nil
	}
	return false
}
