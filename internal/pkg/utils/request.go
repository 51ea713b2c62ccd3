package utils

import (
	"io"
	"net/http"
	"panel-service/internal/pkg/constvars"
	"panel-service/internal/pkg/dto/requests"
	"panel-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// DecodeAndValidate reads a JSON body into dst and runs struct validation.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// BuildUploadAvatarRequest reads the avatar part of a multipart body. At most
// maxBytes+1 bytes are read so an oversized upload is still reported by size.
func BuildUploadAvatarRequest(r *http.Request, maxBytes int64) (*requests.UploadAvatar, error) {
	err := r.ParseMultipartForm(maxBytes)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	file, fileHeader, err := r.FormFile(constvars.AvatarFormField)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	size := int64(len(data))
	if fileHeader.Size > size {
		size = fileHeader.Size
	}
	return &requests.UploadAvatar{
		ContentType: http.DetectContentType(data),
		Size:        size,
		Data:        data,
	}, nil
}
