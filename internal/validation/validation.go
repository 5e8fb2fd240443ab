// Package validation rejects structurally invalid input records before any
// scoring call is made.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"risk-engine/internal/model"
)

// Model validation tool
var validate *validator.Validate

var fieldValidators = map[string]func(validator.FieldLevel) bool{
	"enum": validateEnum,
}

func init() {
	validate = validator.New()

	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, vFunc := range fieldValidators {
		if err := validate.RegisterValidation(tag, vFunc, false); err != nil {
			panic(fmt.Errorf("failed to register validation for %s: %s", tag, err))
		}
	}
}

type enumerated interface {
	Valid() bool
}

func validateEnum(field validator.FieldLevel) bool {
	if value, ok := field.Field().Interface().(enumerated); ok {
		return value.Valid()
	}
	return false
}

// Messages validates v and returns one CRITICAL message per failing field, in
// field order. A nil result means v is valid.
func Messages(v any) []model.CalculationMessage {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidInput,
			Message: err.Error(),
		}}
	}

	msgs := make([]model.CalculationMessage, 0, len(vErrs))
	for _, fe := range vErrs {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidInput,
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return msgs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "enum":
		return fmt.Sprintf("%s has unrecognized value %q", fe.Field(), fmt.Sprint(fe.Value()))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
