package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/models"
)

const headlineCount = 3

// News adds the homepage headline listings to the news CRUD routes
type News struct {
	Content[models.NewsItem, *models.NewsItem]
}

// LatestHandler returns the newest published news
func (n News) LatestHandler(w http.ResponseWriter, r *http.Request) {
	n.list(w, r, databases.ListOptions{VisibleOnly: true, Limit: headlineCount})
}

// FeaturedHandler returns the newest published news of high or urgent priority
func (n News) FeaturedHandler(w http.ResponseWriter, r *http.Request) {
	n.list(w, r, databases.ListOptions{
		VisibleOnly: true,
		Where:       bson.M{"priority": bson.M{"$in": []string{models.PriorityHigh, models.PriorityUrgent}}},
		Limit:       headlineCount,
	})
}
