package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/vazgensoghoyan/folk-is-love/internal/auth/policy"
	"github.com/vazgensoghoyan/folk-is-love/internal/auth/principal"
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

type EventInput struct {
	Title       *string
	Description *string
	StartsAt    *time.Time
	City        *string
	Country     *string
	Venue       *string
	Link        *string
	TagIDs      []domain.TagID
}

type Events struct {
	Log     *log.Logger
	Events  domain.EventsRepo
	Tags    domain.TagsRepo
	Cache   domain.Cache
	FeedTTL int // секунд
}

func (s *Events) List(ctx context.Context) ([]domain.Event, error) {
	if s.Cache != nil {
		if b, err := s.Cache.Get(ctx, domain.CacheKeyEventFeed()); err == nil && len(b) > 0 {
			var out []domain.Event
			if json.Unmarshal(b, &out) == nil {
				return out, nil
			}
		}
	}
	out, err := s.Events.EventsAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if b, err := json.Marshal(out); err == nil {
			_ = s.Cache.Set(ctx, domain.CacheKeyEventFeed(), b, s.FeedTTL)
		}
	}
	return out, nil
}

func (s *Events) ByID(ctx context.Context, id domain.EventID) (domain.Event, error) {
	return s.Events.EventByID(ctx, id)
}

func (s *Events) ByTag(ctx context.Context, tagID domain.TagID) ([]domain.Event, error) {
	if _, err := s.Tags.TagByID(ctx, tagID); err != nil {
		return nil, err
	}
	return s.Events.EventsByTag(ctx, tagID)
}

// Upcoming — события позже текущего момента, кеш не используем
// (результат зависит от времени запроса).
func (s *Events) Upcoming(ctx context.Context) ([]domain.Event, error) {
	return s.Events.EventsUpcoming(ctx, time.Now().UTC())
}

func (s *Events) Create(ctx context.Context, in EventInput) (domain.Event, error) {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return domain.Event{}, err
	}
	if in.Title == nil || *in.Title == "" || in.Description == nil || *in.Description == "" ||
		in.StartsAt == nil || in.City == nil || *in.City == "" || in.Country == nil || *in.Country == "" {
		return domain.Event{}, domain.E(domain.KindBadParams,
			"title, description, starts_at, city and country are required")
	}
	for _, tid := range in.TagIDs {
		if _, err := s.Tags.TagByID(ctx, tid); err != nil {
			return domain.Event{}, err
		}
	}

	e := domain.Event{
		Title:       *in.Title,
		Description: *in.Description,
		StartsAt:    *in.StartsAt,
		City:        *in.City,
		Country:     *in.Country,
		Author:      p.Username,
		TagIDs:      in.TagIDs,
	}
	if in.Venue != nil {
		e.Venue = *in.Venue
	}
	if in.Link != nil {
		e.Link = *in.Link
	}

	out, err := s.Events.CreateEvent(ctx, e)
	if err != nil {
		return domain.Event{}, err
	}
	s.invalidateFeed(ctx)
	s.Log.Printf("event created id=%s author=%s", out.ID, out.Author)
	return out, nil
}

func (s *Events) Edit(ctx context.Context, id domain.EventID, in EventInput) (domain.Event, error) {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return domain.Event{}, err
	}
	e, err := s.Events.EventByID(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	if err := policy.CheckIsOwnerOrAdmin(p, e.Author); err != nil {
		return domain.Event{}, err
	}

	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.StartsAt != nil {
		e.StartsAt = *in.StartsAt
	}
	if in.City != nil {
		e.City = *in.City
	}
	if in.Country != nil {
		e.Country = *in.Country
	}
	if in.Venue != nil {
		e.Venue = *in.Venue
	}
	if in.Link != nil {
		e.Link = *in.Link
	}
	if in.TagIDs != nil {
		for _, tid := range in.TagIDs {
			if _, err := s.Tags.TagByID(ctx, tid); err != nil {
				return domain.Event{}, err
			}
		}
		e.TagIDs = in.TagIDs
	} else {
		e.TagIDs = nil
	}

	out, err := s.Events.UpdateEvent(ctx, e)
	if err != nil {
		return domain.Event{}, err
	}
	s.invalidateFeed(ctx)
	return out, nil
}

func (s *Events) Delete(ctx context.Context, id domain.EventID) error {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return err
	}
	e, err := s.Events.EventByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CheckIsOwnerOrAdmin(p, e.Author); err != nil {
		return err
	}
	if err := s.Events.DeleteEvent(ctx, id); err != nil {
		return err
	}
	s.invalidateFeed(ctx)
	s.Log.Printf("event deleted id=%s by=%s", id, p.Username)
	return nil
}

func (s *Events) invalidateFeed(ctx context.Context) {
	if s.Cache != nil {
		_ = s.Cache.Del(ctx, domain.CacheKeyEventFeed())
	}
}
