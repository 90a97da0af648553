package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"
)

// Wrap puts the router behind panic recovery, request logging and CORS
func Wrap(router http.Handler, allowedOrigins []string) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
		handlers.AllowCredentials(),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(true),
	)
	return recovery(RequestLogger(cors(router)))
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	zap.S().Error(v...)
}
