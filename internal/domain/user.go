package domain

import (
	"context"
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Firstname string    `gorm:"size:64;not null" json:"firstname"`
	Lastname  string    `gorm:"size:64;not null" json:"lastname"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Role      Role      `gorm:"size:16;not null;default:USER" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// A user owns at most one address and any number of posts; both die
	// with the user.
	Address *Address `gorm:"constraint:OnDelete:CASCADE" json:"address,omitempty"`
	Posts   []Post   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

// Page is the pagination metadata returned alongside user listings.
type Page struct {
	TotalElements int64 `json:"totalElements"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalPages    int   `json:"totalPages"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByIDWithAddress(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, offset, limit int) ([]User, int64, error)
	Count(ctx context.Context) (int64, error)
	// Delete removes the user together with its address and posts in one
	// transaction.
	Delete(ctx context.Context, id uint) error
}
