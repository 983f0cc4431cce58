package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Multipart bodies are capped; the original behavior had no limit at all.
const maxUploadBytes = 10 << 20

// Uploader persists a request attachment and returns its URL path.
type Uploader interface {
	Store(file io.Reader, originalName string) (string, error)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// storeFormFile saves the named multipart file through the sink. Returns
// nil without error when the field is absent.
func storeFormFile(r *http.Request, uploads Uploader, field string) (*string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	path, err := uploads.Store(file, header.Filename)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
