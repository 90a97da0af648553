package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	models "github.com/stadtwache/stadtwache-api/models"
)

// AdminDatabase is a mock type for the AdminDatabase type
type AdminDatabase struct {
	mock.Mock
}

// FindByUsername provides a mock function with given fields: ctx, username
func (_m *AdminDatabase) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	ret := _m.Called(ctx, username)

	var r0 *models.AdminUser
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.AdminUser)
	}
	return r0, ret.Error(1)
}

// InsertOne provides a mock function with given fields: ctx, admin
func (_m *AdminDatabase) InsertOne(ctx context.Context, admin models.AdminUser) error {
	ret := _m.Called(ctx, admin)
	return ret.Error(0)
}
