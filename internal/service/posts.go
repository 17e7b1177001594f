package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/vazgensoghoyan/folk-is-love/internal/auth/policy"
	"github.com/vazgensoghoyan/folk-is-love/internal/auth/principal"
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

// PostInput — частичное обновление: nil-поле не трогаем.
type PostInput struct {
	Title   *string
	Content *string
	TagIDs  []domain.TagID
}

type Posts struct {
	Log     *log.Logger
	Posts   domain.PostsRepo
	Tags    domain.TagsRepo
	Cache   domain.Cache
	FeedTTL int // секунд
}

// List отдаёт общий фид. Фид кешируется в Redis и инвалидируется
// любой мутацией поста.
func (s *Posts) List(ctx context.Context) ([]domain.Post, error) {
	if s.Cache != nil {
		if b, err := s.Cache.Get(ctx, domain.CacheKeyPostFeed()); err == nil && len(b) > 0 {
			var out []domain.Post
			if json.Unmarshal(b, &out) == nil {
				return out, nil
			}
		}
	}

	out, err := s.Posts.PostsAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if b, err := json.Marshal(out); err == nil {
			_ = s.Cache.Set(ctx, domain.CacheKeyPostFeed(), b, s.FeedTTL)
		}
	}
	return out, nil
}

func (s *Posts) ByID(ctx context.Context, id domain.PostID) (domain.Post, error) {
	return s.Posts.PostByID(ctx, id)
}

func (s *Posts) ByTag(ctx context.Context, tagID domain.TagID) ([]domain.Post, error) {
	if _, err := s.Tags.TagByID(ctx, tagID); err != nil {
		return nil, err
	}
	return s.Posts.PostsByTag(ctx, tagID)
}

// Create пишет пост от имени текущего принципала. Автор берётся только
// из контекста — принять его из запроса значило бы дать публиковать
// от чужого имени.
func (s *Posts) Create(ctx context.Context, in PostInput) (domain.Post, error) {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return domain.Post{}, err
	}
	if in.Title == nil || *in.Title == "" || in.Content == nil || *in.Content == "" {
		return domain.Post{}, domain.E(domain.KindBadParams, "title and content are required")
	}
	if len(in.TagIDs) == 0 {
		return domain.Post{}, domain.E(domain.KindBadParams, "post must have at least one tag")
	}
	for _, tid := range in.TagIDs {
		if _, err := s.Tags.TagByID(ctx, tid); err != nil {
			return domain.Post{}, err
		}
	}

	out, err := s.Posts.CreatePost(ctx, domain.Post{
		Title:   *in.Title,
		Content: *in.Content,
		Author:  p.Username,
		TagIDs:  in.TagIDs,
	})
	if err != nil {
		return domain.Post{}, err
	}
	s.invalidateFeed(ctx)
	s.Log.Printf("post created id=%s author=%s", out.ID, out.Author)
	return out, nil
}

// Edit: только владелец или админ.
func (s *Posts) Edit(ctx context.Context, id domain.PostID, in PostInput) (domain.Post, error) {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return domain.Post{}, err
	}
	post, err := s.Posts.PostByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if err := policy.CheckIsOwnerOrAdmin(p, post.Author); err != nil {
		return domain.Post{}, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.TagIDs != nil {
		for _, tid := range in.TagIDs {
			if _, err := s.Tags.TagByID(ctx, tid); err != nil {
				return domain.Post{}, err
			}
		}
		post.TagIDs = in.TagIDs
	} else {
		post.TagIDs = nil // не трогаем связи
	}

	out, err := s.Posts.UpdatePost(ctx, post)
	if err != nil {
		return domain.Post{}, err
	}
	s.invalidateFeed(ctx)
	return out, nil
}

func (s *Posts) Delete(ctx context.Context, id domain.PostID) error {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return err
	}
	post, err := s.Posts.PostByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CheckIsOwnerOrAdmin(p, post.Author); err != nil {
		return err
	}
	if err := s.Posts.DeletePost(ctx, id); err != nil {
		return err
	}
	s.invalidateFeed(ctx)
	s.Log.Printf("post deleted id=%s by=%s", id, p.Username)
	return nil
}

func (s *Posts) invalidateFeed(ctx context.Context) {
	if s.Cache != nil {
		_ = s.Cache.Del(ctx, domain.CacheKeyPostFeed())
	}
}
