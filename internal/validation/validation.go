package validation

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/model"
)

// FieldError is one failed rule on one form field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result is the outcome of parsing a create form. Form always holds the
// trimmed and escaped input so a rejected form can be shown again; Value is
// only meaningful when Valid reports true.
type Result[F, T any] struct {
	Form   F
	Value  T
	Errors []FieldError
}

func (r Result[F, T]) Valid() bool {
	return len(r.Errors) == 0
}

// Validator applies the catalog form rules.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("bookstatus", func(fl validator.FieldLevel) bool {
		return model.IsValidStatus(fl.Field().String())
	})

	return &Validator{v: v}
}

// bind maps form values onto dst using its `form` tags.
func bind(values url.Values, dst any) error {
	return binding.MapFormWithTag(dst, values, "form")
}

// check validates s and converts failures to FieldErrors. messages overrides
// the generic text, keyed by "field.rule" or "field".
func (v *Validator) check(s any, messages map[string]string) []FieldError {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Rule: "syntax", Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		fields = append(fields, FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Message: buildMessage(field, fe, messages),
		})
	}
	return fields
}

func buildMessage(field string, fe validator.FieldError, messages map[string]string) string {
	if msg, ok := messages[field+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[field]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "uuid", "uuid4":
		return field + " must be a valid id"
	case "iso8601":
		return field + " must be an ISO-8601 date"
	}
	return field + " is invalid (" + fe.Tag() + ")"
}

// bindError reports a form that could not be mapped at all.
func bindError(err error) []FieldError {
	return []FieldError{{Rule: "syntax", Message: "invalid form: " + err.Error()}}
}

// Escape makes s safe to embed in markup.
func Escape(s string) string {
	return html.EscapeString(s)
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func escape(fields ...*string) {
	for _, f := range fields {
		*f = Escape(*f)
	}
}

// HasError reports whether errs contains a failure for field.
func HasError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
