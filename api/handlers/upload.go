package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/models"
	"github.com/stadtwache/stadtwache-api/storage"
)

// Upload stores admin uploaded files and serves every stored file publicly
type Upload struct {
	Uploads storage.Uploader
}

// UploadHandler stores the multipart file for the purpose named by type
func (u Upload) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, "failed to parse form", invalidBody(err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "failed to read file", models.Invalid("file", "%s", err.Error()))
		return
	}
	defer file.Close()

	purpose, err := storage.ParsePurpose(r.FormValue("type"))
	if err != nil {
		writeError(w, "failed to upload file", err)
		return
	}
	name, err := u.Uploads.Upload(r.Context(), purpose, header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, "failed to upload file", err)
		return
	}
	zap.S().Infow("stored upload", "filename", name, "type", purpose)
	writeJSON(w, http.StatusOK, models.UploadResponse{Filename: name, URL: u.Uploads.URL(name)})
}

// ServeHandler streams a stored file by name
func (u Upload) ServeHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]
	rc, err := u.Uploads.Store.Open(r.Context(), name)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			zap.S().With(err).Errorw("failed to open upload", "filename", name)
		}
		writeError(w, "file not found", err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		zap.S().With(err).Warnw("failed to stream upload", "filename", name)
	}
}
