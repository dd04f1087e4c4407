package service

import (
	"context"

	"go.uber.org/zap"

	"go-user-post-api/internal/apperr"
	"go-user-post-api/internal/domain"
	"go-user-post-api/internal/transport/http/dto"
)

type PostService struct {
	posts domain.PostRepository
	users domain.UserRepository
	log   *zap.Logger
}

func NewPostService(posts domain.PostRepository, users domain.UserRepository, log *zap.Logger) *PostService {
	return &PostService{posts: posts, users: users, log: log}
}

// List returns posts newest-first, filtered to one user when userID is set.
func (s *PostService) List(ctx context.Context, userID *uint) ([]domain.Post, error) {
	return s.posts.List(ctx, userID)
}

func (s *PostService) Create(ctx context.Context, in *dto.CreatePost) (*domain.Post, error) {
	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	p := &domain.Post{
		Title:  in.Title,
		Body:   in.Body,
		UserID: user.ID,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("post created", zap.Uint("id", p.ID), zap.Uint("userId", user.ID))
	p.User = user
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, id uint) error {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("Post not found")
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("post deleted", zap.Uint("id", id))
	return nil
}
