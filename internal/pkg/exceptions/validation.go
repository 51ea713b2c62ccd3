package exceptions

import (
	"errors"
	"panel-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// translator covers tags missing from constvars.CustomValidationErrorMessages.
var translator ut.Translator

// RegisterTranslations attaches the English default translations to v.
// Call once with the shared validator instance.
func RegisterTranslations(v *validator.Validate) error {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return err
	}
	translator = trans
	return nil
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	tag := firstErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		if translator != nil {
			return firstErr.Translate(translator)
		}
		customMessage = "is invalid"
	}
	if constvars.TagsWithStandaloneMessage[tag] {
		return customMessage
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
	}
	return firstErr.Field() + " " + customMessage
}
