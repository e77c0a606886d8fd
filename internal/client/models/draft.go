package models

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Credentials are what the auth form collects.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// NoteDraft is a note being submitted by a student.
type NoteDraft struct {
	Title      string `validate:"required,max=100"`
	Content    string `validate:"required"`
	Attachment *Upload
}

// Upload is a local file sent along with a new note.
type Upload struct {
	Filename string `validate:"required"`
	Data     []byte `validate:"required"`
}

// ValidationError lists the fields that failed client-side checks. No
// request is sent when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "fill in all fields: " + strings.Join(e.Fields, ", ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks v against its validate tags and reports failures as a
// *ValidationError naming the offending fields in lower case.
func Validate(v any) error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return &ValidationError{Fields: fields}
}
