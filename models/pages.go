package models

// HomepageContent is the singleton configuration of the homepage
type HomepageContent struct {
	Tracked         `bson:",inline"`
	HeroTitle       string `bson:"hero_title" json:"hero_title"`
	HeroSubtitle    string `bson:"hero_subtitle" json:"hero_subtitle"`
	HeroImage       string `bson:"hero_image" json:"hero_image"`
	AboutTitle      string `bson:"about_title" json:"about_title"`
	AboutText       string `bson:"about_text" json:"about_text"`
	EmergencyNumber string `bson:"emergency_number" json:"emergency_number"`
	PhoneNumber     string `bson:"phone_number" json:"phone_number"`
	Email           string `bson:"email" json:"email"`
	Address         string `bson:"address" json:"address"`
	OfficeHours     string `bson:"office_hours" json:"office_hours"`
	ShowLatestNews  bool   `bson:"show_latest_news" json:"show_latest_news"`
	ShowServices    bool   `bson:"show_services" json:"show_services"`
	ShowTeam        bool   `bson:"show_team" json:"show_team"`
	ShowStatistics  bool   `bson:"show_statistics" json:"show_statistics"`
	FooterText      string `bson:"footer_text" json:"footer_text"`
}

// Defaults fills the homepage shown before an admin edits anything
func (h *HomepageContent) Defaults() {
	h.HeroTitle = "Stadtwache"
	h.HeroSubtitle = "Für Ihre Sicherheit in unserer Stadt"
	h.AboutTitle = "Über uns"
	h.AboutText = "Die Stadtwache sorgt gemeinsam mit der Polizei für Sicherheit und Ordnung in unserer Stadt."
	h.EmergencyNumber = "110"
	h.PhoneNumber = "+49 123 456-789"
	h.Email = "info@stadtwache.de"
	h.Address = "Hauptstraße 1, 12345 Musterstadt"
	h.OfficeHours = "Mo-Fr 08:00-18:00"
	h.ShowLatestNews = true
	h.ShowServices = true
	h.ShowTeam = true
	h.ShowStatistics = true
	h.FooterText = "© Stadtwache. Alle Rechte vorbehalten."
}

// Validate checks the contact address when given
func (h *HomepageContent) Validate() error {
	if h.Email != "" {
		return validEmail("email", h.Email)
	}
	return nil
}

// AboutPage is the singleton content of the about page
type AboutPage struct {
	Tracked  `bson:",inline"`
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle" json:"subtitle"`
	Content  string `bson:"content" json:"content"`
	Mission  string `bson:"mission" json:"mission"`
	Vision   string `bson:"vision" json:"vision"`
	History  string `bson:"history" json:"history"`
	Image    string `bson:"image" json:"image"`
}

// Defaults fills the about page shown before an admin edits anything
func (a *AboutPage) Defaults() {
	a.Title = "Über die Stadtwache"
	a.Subtitle = "Sicherheit, Präsenz und Bürgernähe"
	a.Content = "Die Stadtwache ist Ansprechpartner für alle Bürgerinnen und Bürger in Fragen der öffentlichen Sicherheit."
	a.Mission = "Wir schaffen Sicherheit durch Präsenz und Zusammenarbeit."
	a.Vision = "Eine sichere und lebenswerte Stadt für alle."
}

// Validate accepts any about page content
func (a *AboutPage) Validate() error {
	return nil
}

// Chat widget positions
const (
	WidgetBottomRight = "bottom-right"
	WidgetBottomLeft  = "bottom-left"
)

// ChatWidget is the singleton configuration of the contact chat widget
type ChatWidget struct {
	Tracked        `bson:",inline"`
	Enabled        bool   `bson:"enabled" json:"enabled"`
	Title          string `bson:"title" json:"title"`
	WelcomeMessage string `bson:"welcome_message" json:"welcome_message"`
	ButtonText     string `bson:"button_text" json:"button_text"`
	Position       string `bson:"position" json:"position"`
	PrimaryColor   string `bson:"primary_color" json:"primary_color"`
	ContactEmail   string `bson:"contact_email" json:"contact_email"`
	ContactPhone   string `bson:"contact_phone" json:"contact_phone"`
	OfficeHours    string `bson:"office_hours" json:"office_hours"`
}

// Defaults fills the widget shown before an admin edits anything
func (c *ChatWidget) Defaults() {
	c.Enabled = true
	c.Title = "Kontakt"
	c.WelcomeMessage = "Hallo! Wie können wir Ihnen helfen?"
	c.ButtonText = "Chat starten"
	c.Position = WidgetBottomRight
	c.PrimaryColor = "#1e40af"
	c.ContactEmail = "info@stadtwache.de"
	c.ContactPhone = "+49 123 456-789"
	c.OfficeHours = "Mo-Fr 08:00-18:00"
}

// Validate checks the widget position
func (c *ChatWidget) Validate() error {
	return oneOf("position", c.Position, WidgetBottomRight, WidgetBottomLeft)
}
