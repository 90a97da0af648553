// Package docs Stadtwache API.
//
// Documentation of the Stadtwache CMS API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//     - multipart/form-data
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
//
//    SecurityDefinitions:
//    bearer:
//      type: apiKey
//      name: Authorization
//      in: header
//
// swagger:meta
package docs

import (
	"github.com/stadtwache/stadtwache-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /api/admin/login admin adminLogin
// Exchanges admin credentials for a bearer token.
// responses:
//   200: tokenResponse
//   401: errorResponse

// A bearer token to send as Authorization header on admin routes.
// swagger:response tokenResponse
type tokenResponseWrapper struct {
	// in:body
	Body models.TokenResponse
}

// swagger:route GET /api/news news listNews
// Lists the published news, newest first.
// responses:
//   200: newsListResponse

// swagger:route GET /api/news/latest news latestNews
// Lists the three newest published news.
// responses:
//   200: newsListResponse

// swagger:route GET /api/news/featured news featuredNews
// Lists the three newest published news of high or urgent priority.
// responses:
//   200: newsListResponse

// Published news items
// swagger:response newsListResponse
type newsListResponseWrapper struct {
	// in:body
	Body []models.NewsItem
}

// swagger:route GET /api/homepage pages homepage
// Gets the homepage configuration, created with defaults on first read.
// responses:
//   200: homepageResponse

// swagger:response homepageResponse
type homepageResponseWrapper struct {
	// in:body
	Body models.HomepageContent
}

// swagger:route POST /api/reports reports createReport
// Submits an incident report. The report always starts with status new.
// responses:
//   200: reportResponse
//   422: errorResponse

// swagger:response reportResponse
type reportResponseWrapper struct {
	// in:body
	Body models.Report
}

// swagger:route POST /api/admin/upload uploads uploadFile
// Stores a file for the given type and returns its generated name.
// responses:
//   200: uploadResponse
//   400: errorResponse

// swagger:response uploadResponse
type uploadResponseWrapper struct {
	// in:body
	Body models.UploadResponse
}

// swagger:route POST /api/admin/database/query database queryDatabase
// Runs a raw filter against a collection.
// responses:
//   200: queryResponse

// swagger:response queryResponse
type queryResponseWrapper struct {
	// in:body
	Body models.DatabaseQueryResult
}

// Describes why a request failed
// swagger:response errorResponse
type errorResponseWrapper struct {
	// in:body
	Body models.ErrorMessageResponse
}
