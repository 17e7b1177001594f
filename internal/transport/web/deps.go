package web

import "github.com/vazgensoghoyan/folk-is-love/internal/service"

// Services — всё, что нужно хендлерам v1.
type Services struct {
	Auth     *service.Auth
	Posts    *service.Posts
	Events   *service.Events
	Comments *service.Comments
	Tags     *service.Tags
	Users    *service.Users
}
