package models

// Report statuses
const (
	ReportNew         = "new"
	ReportUnderReview = "under_review"
	ReportCompleted   = "completed"
	ReportClosed      = "closed"
)

// Report priorities reuse the news levels plus low
const PriorityLow = "low"

// IncidentTypes is the fixed catalog offered by the public report form
var IncidentTypes = []string{
	"Diebstahl",
	"Einbruch",
	"Körperverletzung",
	"Sachbeschädigung",
	"Vandalismus",
	"Ruhestörung",
	"Verkehrsunfall",
	"Betrug",
	"Verdächtige Aktivität",
	"Sonstiges",
}

// Report is an incident reported by a citizen
type Report struct {
	Tracked             `bson:",inline"`
	IncidentType        string `bson:"incident_type" json:"incident_type"`
	Description         string `bson:"description" json:"description"`
	Location            string `bson:"location" json:"location"`
	IncidentDate        string `bson:"incident_date" json:"incident_date"`
	IncidentTime        string `bson:"incident_time" json:"incident_time"`
	ReporterName        string `bson:"reporter_name" json:"reporter_name"`
	ReporterEmail       string `bson:"reporter_email" json:"reporter_email"`
	ReporterPhone       string `bson:"reporter_phone" json:"reporter_phone"`
	HasWitnesses        bool   `bson:"has_witnesses" json:"has_witnesses"`
	WitnessInfo         string `bson:"witness_info" json:"witness_info"`
	HasEvidence         bool   `bson:"has_evidence" json:"has_evidence"`
	EvidenceDescription string `bson:"evidence_description" json:"evidence_description"`
	Status              string `bson:"status" json:"status"`
	Priority            string `bson:"priority" json:"priority"`
	AssignedOfficer     string `bson:"assigned_officer" json:"assigned_officer"`
	AdminNotes          string `bson:"admin_notes" json:"admin_notes"`
	AdminResponse       string `bson:"admin_response" json:"admin_response"`
}

// Defaults sets a new report to the normal priority
func (r *Report) Defaults() {
	r.Status = ReportNew
	r.Priority = PriorityNormal
}

// Validate checks required fields, the reporter email when given and the enums
func (r *Report) Validate() error {
	err := firstError(
		required("incident_type", r.IncidentType),
		required("description", r.Description),
		required("location", r.Location),
		validReportStatus(r.Status),
		oneOf("priority", r.Priority, PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent),
	)
	if err == nil && r.ReporterEmail != "" {
		err = validEmail("reporter_email", r.ReporterEmail)
	}
	return err
}

// ReportStatusUpdate is the narrow status-only transition
type ReportStatusUpdate struct {
	Status string `json:"status"`
}

// Validate checks the status
func (u ReportStatusUpdate) Validate() error {
	return validReportStatus(u.Status)
}

func validReportStatus(status string) error {
	return oneOf("status", status, ReportNew, ReportUnderReview, ReportCompleted, ReportClosed)
}

// ReportStats are the counters shown on the admin dashboard
type ReportStats struct {
	Total  int64 `json:"total"`
	New    int64 `json:"new"`
	Urgent int64 `json:"urgent"`
}
