package http

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/dahill/invoice-api/internal/application/dto"
)

// Compuerta de validación declarativa: las reglas viven como tags en los
// structs de request y se evalúan todas (no fail-fast) antes de que la
// escritura llegue al caso de uso.

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Reportar los nombres de campo del JSON, no los de Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal se valida como float: habilita required y gt=0.
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})

	if err := v.RegisterValidation("phone", validPhone); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("isodate", validISODate); err != nil {
		panic(err)
	}
	return v
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// validPhone acepta dígitos con +, espacios, puntos, paréntesis y guiones
// (p. ej. +1-555-0123).
var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 .()\-]{5,19}$`)

func validPhone(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(fl.Field().String())
}

// validISODate acepta fecha calendario (2024-01-15) o timestamp RFC 3339.
func validISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// fieldMessages tabla campo -> regla -> mensaje para el caller.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Customer name is required",
		"min":      "Customer name must be at least 2 characters long",
	},
	"email": {
		"required": "Email is required",
		"email":    "Please provide a valid email address",
	},
	"phone": {
		"phone": "Please provide a valid phone number",
	},
	"address": {
		"max": "Address must not exceed 500 characters",
	},
	"jobLocation": {
		"max": "Job location must not exceed 200 characters",
	},
	"date": {
		"required": "Invoice date is required",
		"isodate":  "Please provide a valid date",
	},
	"description": {
		"required": "Description is required",
		"min":      "Description must be between 5 and 500 characters",
		"max":      "Description must be between 5 and 500 characters",
	},
	"amount": {
		"required": "Amount is required",
		"gt":       "Amount must be a positive number",
	},
	"customerId": {
		"required": "Customer ID is required",
		"min":      "Customer ID must be a valid integer",
	},
	"note": {
		"max": "Note must not exceed 1000 characters",
	},
	"username": {
		"required": "Username is required",
		"min":      "Username must be between 3 and 50 characters",
		"max":      "Username must be between 3 and 50 characters",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters long",
	},
}

// ValidateRequest evalúa la tabla de reglas del request y devuelve TODAS las
// violaciones como pares (campo, mensaje). nil si el request es válido.
func ValidateRequest(s any) []dto.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.FieldError{{Field: "", Message: "Invalid request body"}}
	}
	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, dto.FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	if byTag, ok := fieldMessages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
