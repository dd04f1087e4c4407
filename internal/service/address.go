package service

import (
	"context"

	"go.uber.org/zap"

	"go-user-post-api/internal/apperr"
	"go-user-post-api/internal/domain"
	"go-user-post-api/internal/transport/http/dto"
)

type AddressService struct {
	addresses domain.AddressRepository
	users     domain.UserRepository
	log       *zap.Logger
}

func NewAddressService(addresses domain.AddressRepository, users domain.UserRepository, log *zap.Logger) *AddressService {
	return &AddressService{addresses: addresses, users: users, log: log}
}

func (s *AddressService) GetByUserID(ctx context.Context, userID uint) (*domain.Address, error) {
	a, err := s.addresses.FindByUserIDWithUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Address not found for the user")
	}
	return a, nil
}

func (s *AddressService) Create(ctx context.Context, in *dto.CreateAddress) (*domain.Address, error) {
	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	existing, err := s.addresses.FindByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("User already has an address")
	}

	a := &domain.Address{
		HouseNumber: in.HouseNumber,
		Street:      in.Street,
		City:        in.City,
		State:       in.State,
		UserID:      user.ID,
	}
	if err := s.addresses.Create(ctx, a); err != nil {
		// The unique index on user_id settles the race between two creates
		// for the same user.
		if apperr.IsDuplicate(err) {
			return nil, apperr.Conflict("User already has an address")
		}
		return nil, err
	}
	s.log.Info("address created", zap.Uint("id", a.ID), zap.Uint("userId", user.ID))
	a.User = user
	return a, nil
}

// Update overwrites only the fields present in the payload; absent fields
// keep their prior value.
func (s *AddressService) Update(ctx context.Context, userID uint, in *dto.UpdateAddress) (*domain.Address, error) {
	a, err := s.addresses.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("Address not found for the user")
	}

	if in.HouseNumber != nil {
		a.HouseNumber = *in.HouseNumber
	}
	if in.Street != nil {
		a.Street = *in.Street
	}
	if in.City != nil {
		a.City = *in.City
	}
	if in.State != nil {
		a.State = *in.State
	}
	if err := s.addresses.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
