package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/api"
	"github.com/stadtwache/stadtwache-api/config"
	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/mailer"
	"github.com/stadtwache/stadtwache-api/models"
	"github.com/stadtwache/stadtwache-api/storage"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   http.Handler
	Config   config.Config
	client   databases.ClientHelper
	dbHelper databases.DatabaseHelper
}

// Services are the dependencies the routes are built from. They are created
// once at startup and shared by every request.
type Services struct {
	Stores databases.Stores
	Files  storage.FileStore
	Mailer mailer.Mailer
	Tokens *api.TokenManager
}

// New creates a new mux router and all the routes
func New(conf *config.Config, s Services) *mux.Router {
	m := api.MiddlewareDB{DB: s.Stores.Admins, Tokens: s.Tokens}
	protect := func(h http.HandlerFunc) http.Handler {
		return m.AdminMiddleware(h)
	}
	uploads := storage.Uploader{Store: s.Files, BaseURL: conf.BaseURL}

	admin := Admin{DB: s.Stores.Admins, Tokens: s.Tokens, TokenTTL: conf.TokenTTL}
	news := News{Content[models.NewsItem, *models.NewsItem]{DB: s.Stores.News}}
	services := Content[models.Service, *models.Service]{DB: s.Stores.Services}
	team := Content[models.TeamMember, *models.TeamMember]{DB: s.Stores.Team}
	statistics := Content[models.Statistic, *models.Statistic]{DB: s.Stores.Statistics}
	navigation := Navigation{Content[models.NavigationItem, *models.NavigationItem]{DB: s.Stores.Navigation}}
	homepage := Singleton[models.HomepageContent, *models.HomepageContent]{DB: s.Stores.Homepage}
	about := Singleton[models.AboutPage, *models.AboutPage]{DB: s.Stores.About}
	chatWidget := Singleton[models.ChatWidget, *models.ChatWidget]{DB: s.Stores.ChatWidget}
	application := Application{
		Content: Content[models.Application, *models.Application]{DB: s.Stores.Applications},
		Uploads: uploads,
		Mailer:  s.Mailer,
	}
	feedback := Feedback{
		Content: Content[models.Feedback, *models.Feedback]{DB: s.Stores.Feedback},
		Mailer:  s.Mailer,
	}
	report := Report{Content[models.Report, *models.Report]{DB: s.Stores.Reports}}
	upload := Upload{Uploads: uploads}
	database := Database{Inspector: s.Stores.Inspector, MaxLimit: conf.QueryLimitMax}

	r := mux.NewRouter()

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/", rootHandler).Methods("GET")

	// public site
	apiRouter.HandleFunc("/homepage", homepage.GetHandler).Methods("GET")
	apiRouter.HandleFunc("/about", about.GetHandler).Methods("GET")
	apiRouter.HandleFunc("/chat-widget", chatWidget.GetHandler).Methods("GET")
	apiRouter.HandleFunc("/services", services.ListHandler).Methods("GET")
	apiRouter.HandleFunc("/team", team.ListHandler).Methods("GET")
	apiRouter.HandleFunc("/statistics", statistics.ListHandler).Methods("GET")
	apiRouter.HandleFunc("/navigation", navigation.ListHandler).Methods("GET")
	apiRouter.HandleFunc("/news", news.ListHandler).Methods("GET")
	apiRouter.HandleFunc("/news/latest", news.LatestHandler).Methods("GET")
	apiRouter.HandleFunc("/news/featured", news.FeaturedHandler).Methods("GET")
	apiRouter.HandleFunc("/news/{id}", news.GetHandler).Methods("GET")
	apiRouter.HandleFunc("/applications", application.CreateHandler).Methods("POST")
	apiRouter.HandleFunc("/feedback", feedback.CreateHandler).Methods("POST")
	apiRouter.HandleFunc("/reports", report.CreateHandler).Methods("POST")
	apiRouter.HandleFunc("/reports/types", report.TypesHandler).Methods("GET")
	apiRouter.HandleFunc("/uploads/{filename}", upload.ServeHandler).Methods("GET")

	// admin
	apiRouter.HandleFunc("/admin/login", admin.LoginHandler).Methods("POST")
	apiRouter.Handle("/admin/me", protect(admin.MeHandler)).Methods("GET")

	registerContent(apiRouter, protect, "news", news.Content)
	registerContent(apiRouter, protect, "services", services)
	registerContent(apiRouter, protect, "team", team)
	registerContent(apiRouter, protect, "statistics", statistics)

	apiRouter.Handle("/admin/navigation", protect(navigation.ListAdminHandler)).Methods("GET")
	apiRouter.Handle("/admin/navigation", protect(navigation.ReplaceHandler)).Methods("PUT")

	apiRouter.Handle("/admin/homepage", protect(homepage.GetHandler)).Methods("GET")
	apiRouter.Handle("/admin/homepage", protect(homepage.UpdateHandler)).Methods("PUT")
	apiRouter.Handle("/admin/about", protect(about.GetHandler)).Methods("GET")
	apiRouter.Handle("/admin/about", protect(about.UpdateHandler)).Methods("PUT")
	apiRouter.Handle("/admin/chat-widget", protect(chatWidget.GetHandler)).Methods("GET")
	apiRouter.Handle("/admin/chat-widget", protect(chatWidget.UpdateHandler)).Methods("PUT")

	apiRouter.Handle("/admin/applications", protect(application.ListAdminHandler)).Methods("GET")
	apiRouter.Handle("/admin/applications/{id}", protect(application.GetAdminHandler)).Methods("GET")
	apiRouter.Handle("/admin/applications/{id}/respond", protect(application.RespondHandler)).Methods("PUT")
	apiRouter.Handle("/admin/applications/{id}", protect(application.DeleteHandler)).Methods("DELETE")

	apiRouter.Handle("/admin/feedback", protect(feedback.ListAdminHandler)).Methods("GET")
	apiRouter.Handle("/admin/feedback/{id}", protect(feedback.GetAdminHandler)).Methods("GET")
	apiRouter.Handle("/admin/feedback/{id}/respond", protect(feedback.RespondHandler)).Methods("PUT")
	apiRouter.Handle("/admin/feedback/{id}", protect(feedback.DeleteHandler)).Methods("DELETE")

	apiRouter.Handle("/admin/reports", protect(report.ListAdminHandler)).Methods("GET")
	apiRouter.Handle("/admin/reports/stats", protect(report.StatsHandler)).Methods("GET")
	apiRouter.Handle("/admin/reports/{id}", protect(report.GetAdminHandler)).Methods("GET")
	apiRouter.Handle("/admin/reports/{id}", protect(report.UpdateHandler)).Methods("PUT")
	apiRouter.Handle("/admin/reports/{id}/status", protect(report.StatusHandler)).Methods("PUT")
	apiRouter.Handle("/admin/reports/{id}", protect(report.DeleteHandler)).Methods("DELETE")

	apiRouter.Handle("/admin/upload", protect(upload.UploadHandler)).Methods("POST")

	apiRouter.Handle("/admin/database/collections", protect(database.CollectionsHandler)).Methods("GET")
	apiRouter.Handle("/admin/database/query", protect(database.QueryHandler)).Methods("POST")
	apiRouter.Handle("/admin/database/stats", protect(database.StatsHandler)).Methods("GET")

	return r
}

// registerContent adds the admin CRUD routes of one content kind
func registerContent[T any, PT models.EntityPtr[T]](r *mux.Router, protect func(http.HandlerFunc) http.Handler, path string, c Content[T, PT]) {
	base := "/admin/" + path
	r.Handle(base, protect(c.ListAdminHandler)).Methods("GET")
	r.Handle(base, protect(c.CreateHandler)).Methods("POST")
	r.Handle(base+"/{id}", protect(c.GetAdminHandler)).Methods("GET")
	r.Handle(base+"/{id}", protect(c.UpdateHandler)).Methods("PUT")
	r.Handle(base+"/{id}", protect(c.DeleteHandler)).Methods("DELETE")
}

// Initialize connects to the database, bootstraps the admin account and
// builds the router
func (a *App) Initialize() error {
	ctx := context.Background()

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	a.client = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	zap.S().Info("stadtwache-api has connected to the database")

	stores := databases.NewStores(a.dbHelper)
	_, err = databases.EnsureDefaultAdmin(ctx, stores.Admins, a.Config.AdminUsername, a.Config.AdminEmail, func() (string, error) {
		return api.HashPassword(a.Config.AdminPassword)
	})
	if err != nil {
		zap.S().With(err).Error("failed to bootstrap admin user")
		return err
	}

	files, err := storage.New(ctx, &a.Config)
	if err != nil {
		zap.S().With(err).Error("failed to set up file storage")
		return err
	}

	a.initializeRoutes(Services{
		Stores: stores,
		Files:  files,
		Mailer: mailer.New(&a.Config),
		Tokens: api.NewTokenManager(a.Config.JWTSecret),
	})
	return nil
}

func (a *App) initializeRoutes(s Services) {
	a.Router = api.Wrap(New(&a.Config, s), a.Config.CORSOrigins)
}

// Close disconnects from the database
func (a *App) Close(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthCheckResponse{Alive: true})
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Stadtwache API"})
}
