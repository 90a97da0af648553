package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/stadtwache/stadtwache-api/models"
)

// Report handles incident reports
type Report struct {
	Content[models.Report, *models.Report]
}

// CreateHandler stores a citizen report. Whatever the body says, a report
// starts out new and without admin fields.
func (rp Report) CreateHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := rp.decodeNew(r)
	if err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	doc.Status = models.ReportNew
	doc.AssignedOfficer = ""
	doc.AdminNotes = ""
	doc.AdminResponse = ""

	if err := rp.insert(r.Context(), doc); err != nil {
		writeError(w, "failed to create report", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// TypesHandler returns the incident types offered by the report form
func (rp Report) TypesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.IncidentTypes)
}

// StatsHandler counts all, new and urgent reports
func (rp Report) StatsHandler(w http.ResponseWriter, r *http.Request) {
	var stats models.ReportStats
	var err error
	if stats.Total, err = rp.DB.Count(r.Context(), bson.M{}); err != nil {
		writeError(w, "failed to count reports", err)
		return
	}
	if stats.New, err = rp.DB.Count(r.Context(), bson.M{"status": models.ReportNew}); err != nil {
		writeError(w, "failed to count reports", err)
		return
	}
	if stats.Urgent, err = rp.DB.Count(r.Context(), bson.M{"priority": models.PriorityUrgent}); err != nil {
		writeError(w, "failed to count reports", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// StatusHandler moves a report to another status
func (rp Report) StatusHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var update models.ReportStatusUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	if err := update.Validate(); err != nil {
		writeError(w, "failed to update report status", err)
		return
	}

	if err := rp.DB.Set(r.Context(), id, bson.M{"status": update.Status, "updated_at": now()}); err != nil {
		writeError(w, "failed to update report status", err)
		return
	}
	doc, err := rp.reload(r.Context(), id)
	if err != nil {
		writeError(w, "failed to get report", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
