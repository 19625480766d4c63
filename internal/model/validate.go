package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// snapshotSchema describes the persisted CV snapshot. Any subset of
// fields may be absent; skills accept the legacy bare-string shape.
const snapshotSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "fullName": {"type": "string"},
    "emailUser": {"type": "string"},
    "emailDomain": {"type": "string"},
    "phone": {"type": "string"},
    "location": {"type": "string"},
    "linkText": {"type": "string"},
    "linkUrl": {"type": "string"},
    "skillsSectionTitle": {"type": "string"},
    "experienceSectionTitle": {"type": "string"},
    "educationSectionTitle": {"type": "string"},
    "skills": {
      "type": "array",
      "maxItems": 5,
      "items": {
        "oneOf": [
          {"type": "string"},
          {
            "type": "object",
            "properties": {
              "title": {"type": "string"},
              "description": {"type": "string"}
            }
          }
        ]
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": "string"},
          "position": {"type": "string"},
          "duration": {"type": "string"},
          "responsibilities": {
            "type": "array",
            "maxItems": 5,
            "items": {"type": "string"}
          }
        }
      }
    },
    "education": {
      "type": "array",
      "maxItems": 5,
      "items": {
        "type": "object",
        "properties": {
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "date": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "fontSizes": {
      "type": "object",
      "additionalProperties": {"type": "number", "exclusiveMinimum": 0}
    },
    "fontFamily": {"type": "string"}
  }
}`

var snapshotSchemaLoader = gojsonschema.NewStringLoader(snapshotSchema)

// ValidateSnapshotJSON validates a raw snapshot payload against the
// schema before it is persisted.
func ValidateSnapshotJSON(doc []byte) error {
	res, err := gojsonschema.Validate(snapshotSchemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("snapshot validation failed: %s", msgs)
}
