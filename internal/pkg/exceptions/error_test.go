package exceptions

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Wraps Plain Error", func(t *testing.T) {
		err := ErrRedisGet(errors.New("connection refused"))

		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, "failed to GET data from redis: connection refused", err.DevMessage)
		assert.Len(t, err.Locations, 1, "a fresh error records one location")
		assert.Contains(t, err.Locations[0].FunctionName, "TestBuildNewCustomError", "location should point at the caller of the constructor")
	})

	t.Run("Carries Locations Of Wrapped Error", func(t *testing.T) {
		inner := ErrMongoDBInsertDocument(errors.New("duplicate key"))
		outer := ErrQuestionnaireSubmissionFailed(inner)

		assert.Equal(t, http.StatusBadGateway, outer.StatusCode, "outer status wins")
		assert.Len(t, outer.Locations, 2, "locations should accumulate")
		assert.Contains(t, outer.DevMessage, "duplicate key")
	})

	t.Run("Nil Error", func(t *testing.T) {
		err := ErrAvatarNotFound(nil)

		assert.Equal(t, http.StatusNotFound, err.StatusCode)
		assert.Equal(t, "no object found under the requested prefix", err.DevMessage)
	})
}

func TestStatusCodeOf(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusCodeOf(ErrQuestionnaireAlreadyCompleted(nil)))
	assert.Equal(t, http.StatusInternalServerError, StatusCodeOf(errors.New("plain")))
}
