package domain

import (
	"context"
	"time"
)

type UsersRepo interface {
	Close()
	Ping(context.Context) error
	// CreateUser возвращает KindUsernameTaken/KindEmailTaken при гонке
	// на уникальных индексах (store владеет атомарностью проверок).
	CreateUser(ctx context.Context, u User) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	UserByID(ctx context.Context, id UserID) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteUser(ctx context.Context, id UserID) error
	SetBanned(ctx context.Context, id UserID, banned bool) error
	AddInterest(ctx context.Context, username string, tagID TagID) error
	RemoveInterest(ctx context.Context, username string, tagID TagID) error
}

type PostsRepo interface {
	// CreatePost пишет пост и связи post_tags одной транзакцией.
	CreatePost(ctx context.Context, p Post) (Post, error)
	PostByID(ctx context.Context, id PostID) (Post, error)
	PostsAll(ctx context.Context) ([]Post, error)
	PostsByTag(ctx context.Context, tagID TagID) ([]Post, error)
	// UpdatePost перезаписывает title/content; теги заменяются,
	// если p.TagIDs != nil.
	UpdatePost(ctx context.Context, p Post) (Post, error)
	DeletePost(ctx context.Context, id PostID) error
}

type EventsRepo interface {
	CreateEvent(ctx context.Context, e Event) (Event, error)
	EventByID(ctx context.Context, id EventID) (Event, error)
	EventsAll(ctx context.Context) ([]Event, error)
	EventsByTag(ctx context.Context, tagID TagID) ([]Event, error)
	EventsUpcoming(ctx context.Context, after time.Time) ([]Event, error)
	UpdateEvent(ctx context.Context, e Event) (Event, error)
	DeleteEvent(ctx context.Context, id EventID) error
}

type CommentsRepo interface {
	CreateComment(ctx context.Context, c Comment) (Comment, error)
	CommentByID(ctx context.Context, id CommentID) (Comment, error)
	CommentsByPost(ctx context.Context, postID PostID) ([]Comment, error)
	UpdateComment(ctx context.Context, id CommentID, content string) (Comment, error)
	DeleteComment(ctx context.Context, id CommentID) error
}

type TagsRepo interface {
	CreateTag(ctx context.Context, name string) (Tag, error)
	TagByID(ctx context.Context, id TagID) (Tag, error)
	TagsAll(ctx context.Context) ([]Tag, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	RenameTag(ctx context.Context, id TagID, name string) (Tag, error)
	DeleteTag(ctx context.Context, id TagID) error
	// TagInUse — есть ли ссылки из post_tags/event_tags/user_tags.
	TagInUse(ctx context.Context, id TagID) (bool, error)
}
