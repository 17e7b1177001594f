package service

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

func newTagsService(tags *fakeTags) *Tags {
	return &Tags{Log: log.New(io.Discard, "", 0), Tags: tags}
}

func TestTagCreateAdminOnly(t *testing.T) {
	t.Parallel()

	s := newTagsService(newFakeTags())

	_, err := s.Create(ctxWith(domain.Principal{Username: "bob", Role: domain.RoleUser}), "folk")
	require.Error(t, err)
	assert.Equal(t, domain.KindAccessDenied, domain.KindOf(err))

	tag, err := s.Create(ctxWith(domain.Principal{Username: "carol", Role: domain.RoleAdmin}), "  folk ")
	require.NoError(t, err)
	assert.Equal(t, "folk", tag.Name) // нормализация: trim
}

func TestTagCreateDuplicate(t *testing.T) {
	t.Parallel()

	s := newTagsService(newFakeTags("folk"))
	admin := ctxWith(domain.Principal{Username: "carol", Role: domain.RoleAdmin})

	_, err := s.Create(admin, "FOLK") // регистронезависимо
	require.Error(t, err)
	assert.Equal(t, domain.KindTagExists, domain.KindOf(err))
}

func TestTagDeleteInUse(t *testing.T) {
	t.Parallel()

	tags := newFakeTags("folk")
	id := tags.anyID()
	tags.inUse[id] = true

	s := newTagsService(tags)
	admin := ctxWith(domain.Principal{Username: "carol", Role: domain.RoleAdmin})

	err := s.Delete(admin, id)
	require.Error(t, err)
	assert.Equal(t, domain.KindTagInUse, domain.KindOf(err))

	// свободный тег удаляется
	free, err := s.Create(admin, "dance")
	require.NoError(t, err)
	assert.NoError(t, s.Delete(admin, free.ID))
}

func TestTagRenameAdminOnly(t *testing.T) {
	t.Parallel()

	tags := newFakeTags("folk")
	s := newTagsService(tags)

	_, err := s.Rename(ctxWith(domain.Principal{Username: "bob", Role: domain.RoleUser}), tags.anyID(), "dance")
	require.Error(t, err)
	assert.Equal(t, domain.KindAccessDenied, domain.KindOf(err))

	renamed, err := s.Rename(ctxWith(domain.Principal{Username: "carol", Role: domain.RoleAdmin}), tags.anyID(), "dance")
	require.NoError(t, err)
	assert.Equal(t, "dance", renamed.Name)
}
