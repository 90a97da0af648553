package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/databases/mocks"
)

func TestInspector_CollectionsAreSorted(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("ListCollectionNames", context.Background(), bson.M{}).Return([]string{"news", "feedback", "admin_users"}, nil)

	names, err := databases.NewInspector(dbHelper).Collections(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"admin_users", "feedback", "news"}, names)
}

func TestInspector_QueryPassesFilterAndStringifiesIDs(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursor := &mocks.CursorHelper{}

	oid := primitive.NewObjectID()
	nested := primitive.NewObjectID()
	filter := bson.M{"priority": bson.M{"$ne": "normal"}}

	cursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		*args.Get(0).(*[]bson.M) = []bson.M{{
			"_id":   oid,
			"title": "Warnung",
			"refs":  bson.A{nested, "plain"},
			"meta":  bson.D{{Key: "owner", Value: nested}},
		}}
	})
	collectionHelper.On("Find", context.Background(), filter, mock.MatchedBy(func(o *options.FindOptions) bool {
		return o.Limit != nil && *o.Limit == 10
	})).Return(cursor, nil)
	dbHelper.On("Collection", "news").Return(collectionHelper)

	docs, err := databases.NewInspector(dbHelper).Query(context.Background(), "news", filter, 10)

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, oid.Hex(), docs[0]["_id"])
	assert.Equal(t, "Warnung", docs[0]["title"])
	assert.Equal(t, []interface{}{nested.Hex(), "plain"}, docs[0]["refs"])
	assert.Equal(t, bson.M{"owner": nested.Hex()}, docs[0]["meta"])
}

func TestInspector_StatsCountsEveryCollection(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	newsCollection := &mocks.CollectionHelper{}
	reportCollection := &mocks.CollectionHelper{}

	dbHelper.On("ListCollectionNames", context.Background(), bson.M{}).Return([]string{"reports", "news"}, nil)
	newsCollection.On("CountDocuments", context.Background(), bson.M{}).Return(int64(3), nil)
	reportCollection.On("CountDocuments", context.Background(), bson.M{}).Return(int64(12), nil)
	dbHelper.On("Collection", "news").Return(newsCollection)
	dbHelper.On("Collection", "reports").Return(reportCollection)

	stats, err := databases.NewInspector(dbHelper).Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{"news": 3, "reports": 12}, stats)
}
