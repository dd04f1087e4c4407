package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-user-post-api/internal/domain"
	"go-user-post-api/internal/repo"
	"go-user-post-api/internal/service"
	"go-user-post-api/internal/transport/http/dto"
)

type fixture struct {
	users     *service.UserService
	addresses *service.AddressService
	posts     *service.PostService
}

func setup(t *testing.T) fixture {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Address{}, &domain.Post{}))

	log := zap.NewNop()
	userRepo := repo.NewUserRepo(db)
	addressRepo := repo.NewAddressRepo(db)
	postRepo := repo.NewPostRepo(db)
	return fixture{
		users:     service.NewUserService(userRepo, log),
		addresses: service.NewAddressService(addressRepo, userRepo, log),
		posts:     service.NewPostService(postRepo, userRepo, log),
	}
}

func (f fixture) createUser(t *testing.T, email string) *domain.User {
	u, err := f.users.Create(context.Background(), &dto.CreateUser{
		Firstname: "Jane", Lastname: "Doe", Email: email,
	})
	require.NoError(t, err)
	return u
}
