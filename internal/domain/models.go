package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовые идентификаторы
type UserID = uuid.UUID
type PostID = uuid.UUID
type EventID = uuid.UUID
type CommentID = uuid.UUID
type TagID = uuid.UUID

// Роль пользователя. Хранится в БД и в клейме токена.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

// Пользователь
type User struct {
	ID        UserID    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	PassHash  string    `json:"-"` // никогда не отдаём наружу
	Bio       string    `json:"bio,omitempty"`
	Role      Role      `json:"role"`
	Banned    bool      `json:"banned"`
	CreatedAt time.Time `json:"created_at"`
}

// Пост
type Post struct {
	ID        PostID    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"` // username автора
	TagIDs    []TagID   `json:"tag_ids,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Событие (встреча/концерт/фестиваль)
type Event struct {
	ID          EventID   `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Venue       string    `json:"venue,omitempty"`
	Link        string    `json:"link,omitempty"`
	Author      string    `json:"author"`
	TagIDs      []TagID   `json:"tag_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Комментарий к посту
type Comment struct {
	ID        CommentID `json:"id"`
	PostID    PostID    `json:"post_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Тег. Общий справочник для постов, событий и интересов пользователей.
type Tag struct {
	ID   TagID  `json:"id"`
	Name string `json:"name"`
}
