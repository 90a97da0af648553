package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/models"
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	Environment  string

	CORSOrigins []string
	JWTSecret   string
	TokenTTL    time.Duration

	AdminUsername string
	AdminPassword string
	AdminEmail    string

	UploadDir     string
	UploadBackend string
	S3Bucket      string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
	S3Region      string

	SendGridAPIKey string
	MailFrom       string

	QueryLimitMax int64
}

// New sets up all config related services
func New() *Config {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	environment := getEnv("ENVIRONMENT", "production")
	if _, err := setLogger(environment); err != nil {
		// fall back to the example logger so startup is never blocked on logging
		_ = zap.ReplaceGlobals(zap.NewExample())
		zap.S().With(err).Warn("failed to build logger, using example logger")
	}

	return &Config{
		URL:          getEnv("MONGO_URL", "mongodb://127.0.0.1:27017"),
		DatabaseName: getEnv("DB_NAME", "stadtwache"),
		BaseURL:      os.Getenv("BASE_URL"),
		Port:         getEnv("PORT", "8001"),
		Environment:  environment,

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    time.Duration(getInt("TOKEN_TTL_MINUTES", 24*60)) * time.Minute,

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@stadtwache.de"),

		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		UploadBackend: getEnv("UPLOAD_BACKEND", "local"),
		S3Bucket:      os.Getenv("BUCKET_NAME"),
		S3Endpoint:    os.Getenv("AWS_ENDPOINT_URL_S3"),
		S3AccessKey:   os.Getenv("AWS_ACCESS_KEY_ID"),
		S3SecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Region:      getEnv("AWS_REGION", "auto"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       getEnv("MAIL_FROM", "no-reply@stadtwache.de"),

		QueryLimitMax: int64(getInt("QUERY_LIMIT_MAX", 100)),
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	errText := ""
	if err != nil {
		errText = err.Error()
	}
	b, _ := json.Marshal(models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: errText},
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
