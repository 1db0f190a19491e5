package model

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder/internal/errs"
)

//go:embed resume.schema.json
var resumeSchema string

// Validate checks the document against resume.schema.json and collects
// every violation as a field-level error. A nil return means the document
// is well formed.
func Validate(d ResumeData) error {
	schemaLoader := gojsonschema.NewStringLoader(resumeSchema)
	docLoader := gojsonschema.NewGoLoader(d)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	ve := &errs.ValidationError{}
	for _, e := range res.Errors() {
		ve.Fields = append(ve.Fields, errs.FieldError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return ve
}
