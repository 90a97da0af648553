package templates

import (
	"fmt"
	"html"
)

// ResponseEmailData holds data for the emails sent when an admin answers a submission
type ResponseEmailData struct {
	Name     string
	Subject  string
	Status   string // already translated for display
	Response string
}

// RenderApplicationResponseEmail generates the HTML sent to an applicant once
// their application has been answered
func RenderApplicationResponseEmail(data ResponseEmailData) string {
	body := fmt.Sprintf(`<p>Hallo %s,</p>
      <p>vielen Dank für Ihre Bewerbung als <strong>%s</strong>. Der aktuelle Stand Ihrer Bewerbung: <strong>%s</strong>.</p>
      <div class="quote">%s</div>
      <p>Mit freundlichen Grüßen<br>Ihre Stadtwache</p>`,
		html.EscapeString(data.Name),
		html.EscapeString(data.Subject),
		html.EscapeString(data.Status),
		textToHTML(data.Response),
	)
	return renderLayout("Antwort auf Ihre Bewerbung", "#1e40af", body)
}

// RenderFeedbackResponseEmail generates the HTML sent to a citizen once their
// feedback has been answered
func RenderFeedbackResponseEmail(data ResponseEmailData) string {
	body := fmt.Sprintf(`<p>Hallo %s,</p>
      <p>vielen Dank für Ihr Feedback zum Thema <strong>%s</strong>. Unsere Antwort:</p>
      <div class="quote">%s</div>
      <p>Mit freundlichen Grüßen<br>Ihre Stadtwache</p>`,
		html.EscapeString(data.Name),
		html.EscapeString(data.Subject),
		textToHTML(data.Response),
	)
	return renderLayout("Antwort auf Ihr Feedback", "#047857", body)
}
