package service

import (
	"context"
	"log"
	"strings"

	"github.com/vazgensoghoyan/folk-is-love/internal/auth/policy"
	"github.com/vazgensoghoyan/folk-is-love/internal/auth/principal"
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

// Tags — справочник тегов. Мутации доступны только админу.
type Tags struct {
	Log  *log.Logger
	Tags domain.TagsRepo
}

func (s *Tags) List(ctx context.Context) ([]domain.Tag, error) {
	return s.Tags.TagsAll(ctx)
}

func (s *Tags) ByID(ctx context.Context, id domain.TagID) (domain.Tag, error) {
	return s.Tags.TagByID(ctx, id)
}

func (s *Tags) Create(ctx context.Context, name string) (domain.Tag, error) {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return domain.Tag{}, err
	}
	if err := policy.CheckIsAdmin(p); err != nil {
		return domain.Tag{}, err
	}

	normalized := normalizeTag(name)
	if normalized == "" {
		return domain.Tag{}, domain.E(domain.KindBadParams, "tag name is required")
	}
	exists, err := s.Tags.ExistsByName(ctx, normalized)
	if err != nil {
		return domain.Tag{}, err
	}
	if exists {
		return domain.Tag{}, domain.E(domain.KindTagExists, "Tag already exists: "+normalized)
	}

	out, err := s.Tags.CreateTag(ctx, normalized)
	if err != nil {
		return domain.Tag{}, err
	}
	s.Log.Printf("tag created id=%s name=%q by=%s", out.ID, out.Name, p.Username)
	return out, nil
}

func (s *Tags) Rename(ctx context.Context, id domain.TagID, newName string) (domain.Tag, error) {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return domain.Tag{}, err
	}
	if err := policy.CheckIsAdmin(p); err != nil {
		return domain.Tag{}, err
	}
	if _, err := s.Tags.TagByID(ctx, id); err != nil {
		return domain.Tag{}, err
	}

	normalized := normalizeTag(newName)
	if normalized == "" {
		return domain.Tag{}, domain.E(domain.KindBadParams, "tag name is required")
	}
	exists, err := s.Tags.ExistsByName(ctx, normalized)
	if err != nil {
		return domain.Tag{}, err
	}
	if exists {
		return domain.Tag{}, domain.E(domain.KindTagExists, "Tag already exists: "+normalized)
	}
	return s.Tags.RenameTag(ctx, id, normalized)
}

// Delete запрещён, пока на тег ссылаются посты/события/интересы.
func (s *Tags) Delete(ctx context.Context, id domain.TagID) error {
	p, err := principal.ResolveCurrent(ctx)
	if err != nil {
		return err
	}
	if err := policy.CheckIsAdmin(p); err != nil {
		return err
	}
	tag, err := s.Tags.TagByID(ctx, id)
	if err != nil {
		return err
	}
	inUse, err := s.Tags.TagInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.E(domain.KindTagInUse, "Tag is in use: "+tag.Name)
	}
	return s.Tags.DeleteTag(ctx, id)
}

func normalizeTag(name string) string { return strings.TrimSpace(name) }
