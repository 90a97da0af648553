package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/mailer"
	"github.com/stadtwache/stadtwache-api/models"
	"github.com/stadtwache/stadtwache-api/storage"
)

// Application handles job applications and the admin responses to them
type Application struct {
	Content[models.Application, *models.Application]
	Uploads storage.Uploader
	Mailer  mailer.Mailer
}

// CreateHandler stores an application submitted as a form, with an optional
// CV attached as cv_file
func (a Application) CreateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeError(w, "failed to parse form", invalidBody(err))
		return
	}

	doc := &models.Application{}
	doc.Defaults()
	doc.Name = strings.TrimSpace(r.FormValue("name"))
	doc.Email = strings.TrimSpace(r.FormValue("email"))
	doc.Phone = strings.TrimSpace(r.FormValue("phone"))
	doc.Position = strings.TrimSpace(r.FormValue("position"))
	doc.Message = r.FormValue("message")

	file, header, err := r.FormFile("cv_file")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		file = nil
	case err != nil:
		writeError(w, "failed to read cv_file", models.Invalid("cv_file", "%s", err.Error()))
		return
	default:
		defer file.Close()
		if _, err := storage.PurposeCV.CheckExtension(header.Filename); err != nil {
			writeError(w, "Nur PDF, DOC und DOCX Dateien sind erlaubt", err)
			return
		}
	}

	if err := a.prepare(doc); err != nil {
		writeError(w, "failed to create application", err)
		return
	}
	if file != nil {
		name, err := a.storeCV(r, file, header)
		if err != nil {
			writeError(w, "failed to store cv_file", err)
			return
		}
		doc.CVFilename = name
	}

	if err := a.DB.Insert(r.Context(), doc); err != nil {
		if doc.CVFilename != "" {
			if derr := a.Uploads.Store.Delete(r.Context(), doc.CVFilename); derr != nil {
				zap.S().With(derr).Warnw("failed to remove orphaned cv", "filename", doc.CVFilename)
			}
		}
		writeError(w, "failed to create application", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (a Application) storeCV(r *http.Request, file multipart.File, header *multipart.FileHeader) (string, error) {
	return a.Uploads.Upload(r.Context(), storage.PurposeCV, header.Filename, file, header.Header.Get("Content-Type"))
}

// RespondHandler records the admin decision on an application in one update
// and notifies the applicant
func (a Application) RespondHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var resp models.ApplicationResponse
	if err := decodeJSON(r, &resp); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	if err := resp.Validate(); err != nil {
		writeError(w, "failed to respond to application", err)
		return
	}

	err := a.DB.Set(r.Context(), id, bson.M{
		"status":         resp.Status,
		"admin_response": resp.AdminResponse,
		"admin_email":    resp.AdminEmail,
		"updated_at":     now(),
	})
	if err != nil {
		writeError(w, "failed to respond to application", err)
		return
	}
	doc, err := a.reload(r.Context(), id)
	if err != nil {
		writeError(w, "failed to get application", err)
		return
	}

	if err := a.Mailer.ApplicationResponse(r.Context(), *doc); err != nil {
		zap.S().With(err).Warnw("failed to send application response", "id", id)
	}
	writeJSON(w, http.StatusOK, doc)
}
