package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"panel-service/internal/pkg/exceptions"
	"panel-service/internal/pkg/utils"
	"strings"

	"github.com/go-chi/chi/v5"
)

var errEmptyURLParam = errors.New("empty url parameter")

// urlParam returns the unescaped chi route parameter, so names such as
// "United%20States" reach the usecase as typed by the user.
func urlParam(r *http.Request, name string) (string, error) {
	value, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil {
		return "", exceptions.ErrURLParamValidation(err, name)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", exceptions.ErrURLParamValidation(errEmptyURLParam, name)
	}
	return value, nil
}

var errOwnerMissing = errors.New("owner identity missing from request context")

func ownerFromRequest(r *http.Request) (string, error) {
	owner := utils.GetOwnerIdentityFromContext(r.Context())
	if owner == "" {
		return "", exceptions.ErrTokenSubjectMissing(errOwnerMissing)
	}
	return owner, nil
}
