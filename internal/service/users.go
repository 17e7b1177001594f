package service

import (
	"context"
	"log"

	"github.com/vazgensoghoyan/folk-is-love/internal/auth/policy"
	"github.com/vazgensoghoyan/folk-is-love/internal/auth/principal"
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

type Users struct {
	Log   *log.Logger
	Users domain.UsersRepo
	Tags  domain.TagsRepo
}

func (s *Users) ByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.Users.UserByUsername(ctx, username)
}

// AddInterest/RemoveInterest действуют только на текущего принципала:
// чужие интересы менять нельзя даже админу.
func (s *Users) AddInterest(ctx context.Context, tagID domain.TagID) error {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return err
	}
	if _, err := s.Tags.TagByID(ctx, tagID); err != nil {
		return err
	}
	return s.Users.AddInterest(ctx, p.Username, tagID)
}

func (s *Users) RemoveInterest(ctx context.Context, tagID domain.TagID) error {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return err
	}
	if _, err := s.Tags.TagByID(ctx, tagID); err != nil {
		return err
	}
	return s.Users.RemoveInterest(ctx, p.Username, tagID)
}

// Delete — только админ.
func (s *Users) Delete(ctx context.Context, id domain.UserID) error {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return err
	}
	if err := policy.CheckIsAdmin(p); err != nil {
		return err
	}
	if _, err := s.Users.UserByID(ctx, id); err != nil {
		return err
	}
	if err := s.Users.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.Log.Printf("user deleted id=%s by=%s", id, p.Username)
	return nil
}

// SetBanned — только админ. Бан не отзывает уже выданные токены:
// они живут до естественного exp.
func (s *Users) SetBanned(ctx context.Context, id domain.UserID, banned bool) error {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return err
	}
	if err := policy.CheckIsAdmin(p); err != nil {
		return err
	}
	if _, err := s.Users.UserByID(ctx, id); err != nil {
		return err
	}
	if err := s.Users.SetBanned(ctx, id, banned); err != nil {
		return err
	}
	s.Log.Printf("user ban=%v id=%s by=%s", banned, id, p.Username)
	return nil
}
