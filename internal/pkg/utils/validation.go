package utils

import (
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/exceptions"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumber)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("image_content_type", validateImageContentType)
	exceptions.RegisterTranslations(validate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

func validateImageContentType(fl validator.FieldLevel) bool {
	_, ok := constvars.AllowedImageExtensions[fl.Field().String()]
	return ok
}
