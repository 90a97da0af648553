package models

// Listing is the ordering and visibility shared by the listing kinds
type Listing struct {
	Order  int  `bson:"order" json:"order"`
	Active bool `bson:"active" json:"active"`
}

// Service is an offered service card
type Service struct {
	Tracked     `bson:",inline"`
	Listing     `bson:",inline"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
	Image       string `bson:"image" json:"image"`
}

// Defaults sets the values used when a create request omits them
func (s *Service) Defaults() {
	s.Active = true
	s.Icon = "Shield"
}

// Validate checks required fields
func (s *Service) Validate() error {
	return required("title", s.Title)
}

// TeamMember is a person shown on the team page
type TeamMember struct {
	Tracked     `bson:",inline"`
	Listing     `bson:",inline"`
	Name        string `bson:"name" json:"name"`
	Position    string `bson:"position" json:"position"`
	Description string `bson:"description" json:"description"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	Image       string `bson:"image" json:"image"`
	Icon        string `bson:"icon" json:"icon"`
}

// Defaults sets the values used when a create request omits them
func (m *TeamMember) Defaults() {
	m.Active = true
	m.Icon = "User"
}

// Validate checks required fields and the contact address when given
func (m *TeamMember) Validate() error {
	if err := required("name", m.Name); err != nil {
		return err
	}
	if m.Email != "" {
		return validEmail("email", m.Email)
	}
	return nil
}

// Statistic is a headline number on the homepage
type Statistic struct {
	Tracked     `bson:",inline"`
	Listing     `bson:",inline"`
	Title       string `bson:"title" json:"title"`
	Value       string `bson:"value" json:"value"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
	Color       string `bson:"color" json:"color"`
}

// Defaults sets the values used when a create request omits them
func (s *Statistic) Defaults() {
	s.Active = true
	s.Icon = "TrendingUp"
	s.Color = "blue"
}

// Validate checks required fields
func (s *Statistic) Validate() error {
	return firstError(required("title", s.Title), required("value", s.Value))
}

// NavigationItem is one entry of the site navigation
type NavigationItem struct {
	Base    `bson:",inline"`
	Listing `bson:",inline"`
	Label   string `bson:"label" json:"label"`
	Section string `bson:"section" json:"section"`
}

// Defaults sets the values used when a create request omits them
func (n *NavigationItem) Defaults() {
	n.Active = true
}

// Validate checks required fields
func (n *NavigationItem) Validate() error {
	return firstError(required("label", n.Label), required("section", n.Section))
}

// NavigationUpdate is the full replacement list for the navigation
type NavigationUpdate struct {
	Items []NavigationItem `json:"items"`
}
