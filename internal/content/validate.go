package content

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"devd.dev/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their content file names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		return models.Icons[fl.Field().String()]
	}); err != nil {
		panic("registering icon validation: " + err.Error())
	}

	return v
}

// Validate checks p against the model constraints and returns one finding per
// violated field. It never runs on the rendering path.
func Validate(p *models.Portfolio) []Finding {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Finding{{Severity: SeverityError, Field: "", Message: err.Error()}}
	}

	findings := make([]Finding, 0, len(verrs))
	for _, fe := range verrs {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Field:    strings.TrimPrefix(fe.Namespace(), "Portfolio."),
			Message:  describe(fe),
		})
	}
	return findings
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	case "icon":
		return fmt.Sprintf("unknown icon %q", fe.Value())
	case "min":
		return fmt.Sprintf("needs at least %s entries", fe.Param())
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
