package payload

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaURL is the resource identifier for the embedded payload schema.
const schemaURL = "profilecallback://schema/notification"

// schemaJSON is the canonical notification payload shape: Type and Id are
// always present; IsUserMissing is mutually exclusive with the resolved-user
// fields, which in turn appear all-or-nothing.
const schemaJSON = `{
  "type": "object",
  "properties": {
    "Type": {"type": "string", "minLength": 1},
    "Id": {"type": "string"},
    "IsUserMissing": {"const": "true"},
    "Date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}$"},
    "Email": {"type": "string"},
    "FirstName": {"type": "string"},
    "LastName": {"type": "string"},
    "Locale": {"type": "string"},
    "Phone": {"type": "string"}
  },
  "required": ["Type", "Id"],
  "additionalProperties": false,
  "oneOf": [
    {
      "required": ["IsUserMissing"],
      "not": {
        "anyOf": [
          {"required": ["Date"]},
          {"required": ["Email"]},
          {"required": ["FirstName"]},
          {"required": ["LastName"]},
          {"required": ["Locale"]},
          {"required": ["Phone"]}
        ]
      }
    },
    {
      "required": ["Date", "Email", "FirstName", "LastName"],
      "not": {"required": ["IsUserMissing"]}
    }
  ]
}`

// Validator checks built payloads against the canonical schema.
type Validator struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// NewValidator creates a payload validator. The embedded schema is
// compiled lazily on first use.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate parses the payload and checks it against the canonical schema.
func (v *Validator) Validate(payload string) error {
	v.once.Do(v.compile)
	if v.err != nil {
		return fmt.Errorf("payload: compile schema: %w", v.err)
	}

	var doc any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return fmt.Errorf("payload: parse: %w", err)
	}
	return v.schema.Validate(doc)
}

func (v *Validator) compile() {
	var doc any
	if err := json.Unmarshal([]byte(schemaJSON), &doc); err != nil {
		v.err = fmt.Errorf("unmarshal schema: %w", err)
		return
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		v.err = fmt.Errorf("add schema resource: %w", err)
		return
	}
	v.schema, v.err = c.Compile(schemaURL)
}
