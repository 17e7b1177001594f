package service

import (
	"context"
	"log"

	"github.com/vazgensoghoyan/folk-is-love/internal/auth/policy"
	"github.com/vazgensoghoyan/folk-is-love/internal/auth/principal"
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

type Comments struct {
	Log      *log.Logger
	Comments domain.CommentsRepo
	Posts    domain.PostsRepo
}

func (s *Comments) ByPost(ctx context.Context, postID domain.PostID) ([]domain.Comment, error) {
	if _, err := s.Posts.PostByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.Comments.CommentsByPost(ctx, postID)
}

func (s *Comments) ByID(ctx context.Context, id domain.CommentID) (domain.Comment, error) {
	return s.Comments.CommentByID(ctx, id)
}

func (s *Comments) Add(ctx context.Context, postID domain.PostID, content string) (domain.Comment, error) {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return domain.Comment{}, err
	}
	if content == "" {
		return domain.Comment{}, domain.E(domain.KindBadParams, "content is required")
	}
	if _, err := s.Posts.PostByID(ctx, postID); err != nil {
		return domain.Comment{}, err
	}

	out, err := s.Comments.CreateComment(ctx, domain.Comment{
		PostID:  postID,
		Author:  p.Username,
		Content: content,
	})
	if err != nil {
		return domain.Comment{}, err
	}
	s.Log.Printf("comment added id=%s post=%s author=%s", out.ID, postID, p.Username)
	return out, nil
}

func (s *Comments) Edit(ctx context.Context, id domain.CommentID, content string) (domain.Comment, error) {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return domain.Comment{}, err
	}
	if content == "" {
		return domain.Comment{}, domain.E(domain.KindBadParams, "content is required")
	}
	c, err := s.Comments.CommentByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := policy.CheckIsOwnerOrAdmin(p, c.Author); err != nil {
		return domain.Comment{}, err
	}
	return s.Comments.UpdateComment(ctx, id, content)
}

func (s *Comments) Delete(ctx context.Context, id domain.CommentID) error {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return err
	}
	c, err := s.Comments.CommentByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CheckIsOwnerOrAdmin(p, c.Author); err != nil {
		return err
	}
	return s.Comments.DeleteComment(ctx, id)
}
