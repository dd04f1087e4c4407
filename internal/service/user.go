// Package service holds the domain services: guard checks plus repository
// orchestration, one linear flow per operation.
package service

import (
	"context"

	"go.uber.org/zap"

	"go-user-post-api/internal/apperr"
	"go-user-post-api/internal/domain"
	"go-user-post-api/internal/transport/http/dto"
)

const DefaultPageSize = 10

type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Create(ctx context.Context, in *dto.CreateUser) (*domain.User, error) {
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("User already exists")
	}

	u := &domain.User{
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Email:     in.Email,
		Role:      domain.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// Two requests can pass the existence check together; the unique
		// index on email is the authoritative signal.
		if apperr.IsDuplicate(err) {
			return nil, apperr.Conflict("User already exists")
		}
		return nil, err
	}
	s.log.Info("user created", zap.Uint("id", u.ID), zap.String("email", u.Email))
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	u, err := s.users.FindByIDWithAddress(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, pageNumber, pageSize int) ([]domain.User, domain.Page, error) {
	if pageNumber < 0 {
		pageNumber = 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	users, total, err := s.users.List(ctx, pageNumber*pageSize, pageSize)
	if err != nil {
		return nil, domain.Page{}, err
	}
	page := domain.Page{
		TotalElements: total,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalPages:    int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
	return users, page, nil
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFound("User not found")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Uint("id", id))
	return nil
}
