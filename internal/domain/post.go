package domain

import (
	"context"
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:250;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	UserID uint  `gorm:"index;not null" json:"-"`
	User   *User `json:"user,omitempty"`
}

func (Post) TableName() string { return "posts" }

type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id uint) (*Post, error)
	// List returns posts newest-first; a nil userID means all users.
	List(ctx context.Context, userID *uint) ([]Post, error)
	Delete(ctx context.Context, id uint) error
}
