package domain

import (
	"context"
	"time"
)

type Address struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HouseNumber string    `gorm:"size:25;not null" json:"houseNumber"`
	Street      string    `gorm:"not null" json:"street"`
	City        string    `gorm:"not null" json:"city"`
	State       string    `gorm:"not null" json:"state"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// The unique index is the authoritative "one address per user" guard;
	// the service-level existence check only exists for the friendly error.
	UserID uint  `gorm:"uniqueIndex;not null" json:"-"`
	User   *User `json:"user,omitempty"`
}

func (Address) TableName() string { return "addresses" }

type AddressRepository interface {
	Create(ctx context.Context, a *Address) error
	FindByUserID(ctx context.Context, userID uint) (*Address, error)
	FindByUserIDWithUser(ctx context.Context, userID uint) (*Address, error)
	Update(ctx context.Context, a *Address) error
}
