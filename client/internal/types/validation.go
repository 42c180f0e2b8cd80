package types

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// indianMobile matches a 10-digit Indian mobile number.
var indianMobile = regexp.MustCompile(`^[6-9]\d{9}$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("indianmobile", func(fl validator.FieldLevel) bool {
			return indianMobile.MatchString(fl.Field().String())
		})
		v.RegisterStructValidation(bookingDates, Booking{})
		validate = v
	})
	return validate
}

// jsonFieldName reports fields by their wire name so messages line up with
// the form fields the user filled in.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		r := []rune(fld.Name)
		r[0] = unicode.ToLower(r[0])
		return string(r)
	}
	return name
}

func bookingDates(sl validator.StructLevel) {
	b := sl.Current().Interface().(Booking)
	in, err1 := time.Parse(DateLayout, b.CheckInDate)
	out, err2 := time.Parse(DateLayout, b.CheckOutDate)
	if err1 != nil || err2 != nil {
		return // reported by the datetime tag
	}
	if out.Before(in) {
		sl.ReportError(b.CheckOutDate, "checkOutDate", "CheckOutDate", "aftercheckin", "")
	}
}

// ValidationError lists the invalid fields of a form, keyed by wire name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks v against its struct tags. It returns nil or a *ValidationError.
// The checks are advisory; the backend remains the authority.
func Validate(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "email":
		return "Please enter a valid email"
	case "indianmobile":
		return "Please enter a valid 10-digit Indian mobile number"
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return label + " must be a date (YYYY-MM-DD)"
	case "aftercheckin":
		return "Check-out date must not be before check-in date"
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

// humanize turns "packageCost" into "Package cost".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
