package utils

import (
	"mediconnect-service/internal/pkg/constvars"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
	validate.RegisterValidation("appointment_time", validateAppointmentTime)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("gateway_reference", validateGatewayReference)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateAppointmentTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.AppointmentTimeLayout, strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return ValidateInternationalPhoneDigits(NormalizePhoneDigits(fl.Field().String())) == nil
}

// '|' is the separator of the signed payload, so it may never appear inside an id.
func validateGatewayReference(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.TrimSpace(value) != "" && !strings.Contains(value, "|")
}
