package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	mongo "go.mongodb.org/mongo-driver/mongo"
	options "go.mongodb.org/mongo-driver/mongo/options"

	databases "github.com/stadtwache/stadtwache-api/databases"
)

// CollectionHelper is a mock type for the CollectionHelper type
type CollectionHelper struct {
	mock.Mock
}

func variadic[O any](head []interface{}, opts []O) []interface{} {
	for _, o := range opts {
		head = append(head, o)
	}
	return head
}

// CountDocuments provides a mock function with given fields: _a0, _a1, _a2
func (_m *CollectionHelper) CountDocuments(_a0 context.Context, _a1 interface{}, _a2 ...*options.CountOptions) (int64, error) {
	ret := _m.Called(variadic([]interface{}{_a0, _a1}, _a2)...)
	return ret.Get(0).(int64), ret.Error(1)
}

// DeleteMany provides a mock function with given fields: _a0, _a1, _a2
func (_m *CollectionHelper) DeleteMany(_a0 context.Context, _a1 interface{}, _a2 ...*options.DeleteOptions) (int64, error) {
	ret := _m.Called(variadic([]interface{}{_a0, _a1}, _a2)...)
	return ret.Get(0).(int64), ret.Error(1)
}

// DeleteOne provides a mock function with given fields: _a0, _a1, _a2
func (_m *CollectionHelper) DeleteOne(_a0 context.Context, _a1 interface{}, _a2 ...*options.DeleteOptions) (int64, error) {
	ret := _m.Called(variadic([]interface{}{_a0, _a1}, _a2)...)
	return ret.Get(0).(int64), ret.Error(1)
}

// Find provides a mock function with given fields: _a0, _a1, _a2
func (_m *CollectionHelper) Find(_a0 context.Context, _a1 interface{}, _a2 ...*options.FindOptions) (databases.CursorHelper, error) {
	ret := _m.Called(variadic([]interface{}{_a0, _a1}, _a2)...)

	var r0 databases.CursorHelper
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(databases.CursorHelper)
	}
	return r0, ret.Error(1)
}

// FindOne provides a mock function with given fields: _a0, _a1, _a2
func (_m *CollectionHelper) FindOne(_a0 context.Context, _a1 interface{}, _a2 ...*options.FindOneOptions) databases.SingleResultHelper {
	ret := _m.Called(variadic([]interface{}{_a0, _a1}, _a2)...)

	var r0 databases.SingleResultHelper
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(databases.SingleResultHelper)
	}
	return r0
}

// InsertMany provides a mock function with given fields: _a0, _a1, _a2
func (_m *CollectionHelper) InsertMany(_a0 context.Context, _a1 []interface{}, _a2 ...*options.InsertManyOptions) error {
	ret := _m.Called(variadic([]interface{}{_a0, _a1}, _a2)...)
	return ret.Error(0)
}

// InsertOne provides a mock function with given fields: _a0, _a1, _a2
func (_m *CollectionHelper) InsertOne(_a0 context.Context, _a1 interface{}, _a2 ...*options.InsertOneOptions) (databases.InsertOneResultHelper, error) {
	ret := _m.Called(variadic([]interface{}{_a0, _a1}, _a2)...)

	var r0 databases.InsertOneResultHelper
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(databases.InsertOneResultHelper)
	}
	return r0, ret.Error(1)
}

// ReplaceOne provides a mock function with given fields: _a0, _a1, _a2, _a3
func (_m *CollectionHelper) ReplaceOne(_a0 context.Context, _a1 interface{}, _a2 interface{}, _a3 ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	ret := _m.Called(variadic([]interface{}{_a0, _a1, _a2}, _a3)...)

	var r0 *mongo.UpdateResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*mongo.UpdateResult)
	}
	return r0, ret.Error(1)
}

// UpdateOne provides a mock function with given fields: _a0, _a1, _a2, _a3
func (_m *CollectionHelper) UpdateOne(_a0 context.Context, _a1 interface{}, _a2 interface{}, _a3 ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	ret := _m.Called(variadic([]interface{}{_a0, _a1, _a2}, _a3)...)

	var r0 *mongo.UpdateResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*mongo.UpdateResult)
	}
	return r0, ret.Error(1)
}
