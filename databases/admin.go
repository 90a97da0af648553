package databases

// go generate: mockery --name AdminDatabase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/models"
)

const adminCollectionName = "admin_users"

// AdminDatabase defines the interface for admin user operations
type AdminDatabase interface {
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	InsertOne(ctx context.Context, admin models.AdminUser) error
}

type adminDatabase struct {
	db DatabaseHelper
}

// NewAdminDatabase creates a new admin database wrapper
func NewAdminDatabase(db DatabaseHelper) AdminDatabase {
	return &adminDatabase{db: db}
}

func (a *adminDatabase) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	admin := &models.AdminUser{}
	err := a.db.Collection(adminCollectionName).FindOne(ctx, bson.M{"username": username}).Decode(admin)
	if err != nil {
		if isNoDocuments(err) {
			return nil, fmt.Errorf("%w: admin %q", models.ErrNotFound, username)
		}
		return nil, err
	}
	return admin, nil
}

func (a *adminDatabase) InsertOne(ctx context.Context, admin models.AdminUser) error {
	_, err := a.db.Collection(adminCollectionName).InsertOne(ctx, admin)
	return err
}

// EnsureDefaultAdmin bootstraps the admin account on first boot if it is not
// already present. It reports whether an account was created.
func EnsureDefaultAdmin(ctx context.Context, adb AdminDatabase, username, email string, hashPassword func() (string, error)) (bool, error) {
	username = strings.TrimSpace(username)
	_, err := adb.FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !isNotFound(err) {
		return false, err
	}

	hash, err := hashPassword()
	if err != nil {
		return false, err
	}
	admin := models.AdminUser{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.TrimSpace(strings.ToLower(email)),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := adb.InsertOne(ctx, admin); err != nil {
		return false, err
	}
	zap.S().Infow("created default admin user", "username", username)
	return true, nil
}
