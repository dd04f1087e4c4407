package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-user-post-api/internal/domain"
)

type AddressRepo struct{ db *gorm.DB }

func NewAddressRepo(db *gorm.DB) *AddressRepo { return &AddressRepo{db: db} }

func (r *AddressRepo) Create(ctx context.Context, a *domain.Address) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *AddressRepo) FindByUserID(ctx context.Context, userID uint) (*domain.Address, error) {
	var a domain.Address
	err := r.db.WithContext(ctx).First(&a, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepo) FindByUserIDWithUser(ctx context.Context, userID uint) (*domain.Address, error) {
	var a domain.Address
	err := r.db.WithContext(ctx).Preload("User").First(&a, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepo) Update(ctx context.Context, a *domain.Address) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}
