package utils

import (
	"errors"
	"net/http"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/dto/responses"
	"panel-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponseWithData is used when the client still needs a payload
// next to the error, e.g. the questionnaire state after a failed submit.
func BuildErrorResponseWithData(log *zap.Logger, w http.ResponseWriter, err error, data interface{}) {
	code, response := buildErrorBody(log, err)
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(struct {
		exceptions.CustomError
		Data interface{} `json:"data,omitempty"`
	}{CustomError: response, Data: data})
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, response := buildErrorBody(log, err)
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func buildErrorBody(log *zap.Logger, err error) (int, exceptions.CustomError) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
	} else {
		log.Error(err.Error())
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	return code, response
}
