package databases

import "github.com/stadtwache/stadtwache-api/models"

// Stores bundles every store the handlers need. It is built once at startup
// from the database connection and injected into the router.
type Stores struct {
	Admins       AdminDatabase
	News         ContentDatabase[models.NewsItem]
	Services     ContentDatabase[models.Service]
	Team         ContentDatabase[models.TeamMember]
	Statistics   ContentDatabase[models.Statistic]
	Navigation   ContentDatabase[models.NavigationItem]
	Applications ContentDatabase[models.Application]
	Feedback     ContentDatabase[models.Feedback]
	Reports      ContentDatabase[models.Report]
	Homepage     SingletonDatabase[models.HomepageContent]
	About        SingletonDatabase[models.AboutPage]
	ChatWidget   SingletonDatabase[models.ChatWidget]
	Inspector    Inspector
}

// NewStores builds the mongo backed stores on top of db
func NewStores(db DatabaseHelper) Stores {
	return Stores{
		Admins:       NewAdminDatabase(db),
		News:         NewContentDatabase[models.NewsItem](db, NewsKind),
		Services:     NewContentDatabase[models.Service](db, ServiceKind),
		Team:         NewContentDatabase[models.TeamMember](db, TeamKind),
		Statistics:   NewContentDatabase[models.Statistic](db, StatisticKind),
		Navigation:   NewContentDatabase[models.NavigationItem](db, NavigationKind),
		Applications: NewContentDatabase[models.Application](db, ApplicationKind),
		Feedback:     NewContentDatabase[models.Feedback](db, FeedbackKind),
		Reports:      NewContentDatabase[models.Report](db, ReportKind),
		Homepage:     NewSingletonDatabase[models.HomepageContent](db, HomepageCollection),
		About:        NewSingletonDatabase[models.AboutPage](db, AboutCollection),
		ChatWidget:   NewSingletonDatabase[models.ChatWidget](db, ChatWidgetCollection),
		Inspector:    NewInspector(db),
	}
}
