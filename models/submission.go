package models

// Application statuses
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Application is a job application submitted through the public site
type Application struct {
	Tracked       `bson:",inline"`
	Name          string `bson:"name" json:"name"`
	Email         string `bson:"email" json:"email"`
	Phone         string `bson:"phone" json:"phone"`
	Position      string `bson:"position" json:"position"`
	Message       string `bson:"message" json:"message"`
	CVFilename    string `bson:"cv_filename,omitempty" json:"cv_filename,omitempty"`
	Status        string `bson:"status" json:"status"`
	AdminResponse string `bson:"admin_response" json:"admin_response"`
	AdminEmail    string `bson:"admin_email" json:"admin_email"`
}

// Defaults sets a new application to pending
func (a *Application) Defaults() {
	a.Status = ApplicationPending
}

// Validate checks required fields, the email and the status
func (a *Application) Validate() error {
	return firstError(
		required("name", a.Name),
		validEmail("email", a.Email),
		required("phone", a.Phone),
		required("position", a.Position),
		required("message", a.Message),
		oneOf("status", a.Status, ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected),
	)
}

// ApplicationResponse is the admin decision on an application
type ApplicationResponse struct {
	Status        string `json:"status"`
	AdminResponse string `json:"admin_response"`
	AdminEmail    string `json:"admin_email"`
}

// Validate checks the status and that a response text was given
func (r ApplicationResponse) Validate() error {
	return firstError(
		oneOf("status", r.Status, ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected),
		required("admin_response", r.AdminResponse),
	)
}

// Feedback statuses
const (
	FeedbackNew      = "new"
	FeedbackReviewed = "reviewed"
)

// Feedback is citizen feedback with a 1 to 5 rating
type Feedback struct {
	Base          `bson:",inline"`
	Name          string `bson:"name" json:"name"`
	Email         string `bson:"email" json:"email"`
	Subject       string `bson:"subject" json:"subject"`
	Message       string `bson:"message" json:"message"`
	Rating        int    `bson:"rating" json:"rating"`
	Status        string `bson:"status" json:"status"`
	AdminResponse string `bson:"admin_response" json:"admin_response"`
}

// Defaults marks new feedback as unread
func (f *Feedback) Defaults() {
	f.Status = FeedbackNew
}

// Validate checks required fields, the email, the rating range and the status
func (f *Feedback) Validate() error {
	err := firstError(
		required("name", f.Name),
		validEmail("email", f.Email),
		required("subject", f.Subject),
		required("message", f.Message),
	)
	if err != nil {
		return err
	}
	if f.Rating < 1 || f.Rating > 5 {
		return Invalid("rating", "ensure this value is between 1 and 5")
	}
	return oneOf("status", f.Status, FeedbackNew, FeedbackReviewed)
}

// FeedbackResponse is the admin reply to feedback
type FeedbackResponse struct {
	AdminResponse string `json:"admin_response"`
}

// Validate checks that a response text was given
func (r FeedbackResponse) Validate() error {
	return required("admin_response", r.AdminResponse)
}
