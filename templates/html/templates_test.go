package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderGenericEmail_EscapesContent(t *testing.T) {
	out := RenderGenericEmail("Hinweis <b>", "Zeile 1\n<script>alert(1)</script>")

	assert.Contains(t, out, "Hinweis &lt;b&gt;")
	assert.Contains(t, out, "Zeile 1<br>&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
}

func TestRenderApplicationResponseEmail(t *testing.T) {
	out := RenderApplicationResponseEmail(ResponseEmailData{
		Name:     "Erika & Max",
		Subject:  "Streifendienst",
		Status:   "angenommen",
		Response: "Willkommen im Team!\nBitte melden Sie sich am Montag.",
	})

	assert.Contains(t, out, "Hallo Erika &amp; Max,")
	assert.Contains(t, out, "<strong>Streifendienst</strong>")
	assert.Contains(t, out, "<strong>angenommen</strong>")
	assert.Contains(t, out, "Willkommen im Team!<br>Bitte melden")
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html"))
}

func TestRenderFeedbackResponseEmail(t *testing.T) {
	out := RenderFeedbackResponseEmail(ResponseEmailData{
		Name:     "Erika",
		Subject:  "Parkplatz",
		Response: "Danke, wir kümmern uns darum.",
	})

	assert.Contains(t, out, "Antwort auf Ihr Feedback")
	assert.Contains(t, out, "<strong>Parkplatz</strong>")
	assert.Contains(t, out, "Danke, wir kümmern uns darum.")
}
