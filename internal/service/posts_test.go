package service

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

func ctxWith(p domain.Principal) context.Context {
	return domain.WithPrincipal(context.Background(), p)
}

func strptr(s string) *string { return &s }

func newPostsService(posts *fakePosts, tags *fakeTags) *Posts {
	return &Posts{
		Log:   log.New(io.Discard, "", 0),
		Posts: posts,
		Tags:  tags,
	}
}

func TestPostCreateRequiresPrincipal(t *testing.T) {
	t.Parallel()

	s := newPostsService(newFakePosts(), newFakeTags("folk"))

	_, err := s.Create(context.Background(), PostInput{
		Title: strptr("t"), Content: strptr("c"),
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindUnauthenticated, domain.KindOf(err))
}

func TestPostCreateAuthorFromPrincipal(t *testing.T) {
	t.Parallel()

	tags := newFakeTags("folk")
	s := newPostsService(newFakePosts(), tags)

	ctx := ctxWith(domain.Principal{Username: "bob", Role: domain.RoleUser})
	p, err := s.Create(ctx, PostInput{
		Title:   strptr("Гусли и жалейка"),
		Content: strptr("Где послушать?"),
		TagIDs:  []domain.TagID{tags.anyID()},
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", p.Author)
}

func TestPostCreateRequiresTag(t *testing.T) {
	t.Parallel()

	s := newPostsService(newFakePosts(), newFakeTags("folk"))
	ctx := ctxWith(domain.Principal{Username: "bob", Role: domain.RoleUser})

	_, err := s.Create(ctx, PostInput{Title: strptr("t"), Content: strptr("c")})
	require.Error(t, err)
	assert.Equal(t, domain.KindBadParams, domain.KindOf(err))
}

func TestPostEditOwnership(t *testing.T) {
	t.Parallel()

	posts := newFakePosts(domain.Post{Title: "t", Content: "c", Author: "bob"})
	var postID domain.PostID
	for id := range posts.byID {
		postID = id
	}

	tests := []struct {
		name     string
		p        domain.Principal
		wantKind domain.ErrorKind // "" = успех
	}{
		{"owner can edit", domain.Principal{Username: "bob", Role: domain.RoleUser}, ""},
		{"admin can edit", domain.Principal{Username: "carol", Role: domain.RoleAdmin}, ""},
		{"stranger denied", domain.Principal{Username: "dave", Role: domain.RoleUser}, domain.KindAccessDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPostsService(posts, newFakeTags("folk"))
			_, err := s.Edit(ctxWith(tt.p), postID, PostInput{Content: strptr("edited")})
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
		})
	}
}

func TestPostDeleteDeniedForStranger(t *testing.T) {
	t.Parallel()

	posts := newFakePosts(domain.Post{Title: "t", Content: "c", Author: "bob"})
	var postID domain.PostID
	for id := range posts.byID {
		postID = id
	}
	s := newPostsService(posts, newFakeTags("folk"))

	err := s.Delete(ctxWith(domain.Principal{Username: "dave", Role: domain.RoleUser}), postID)
	require.Error(t, err)
	assert.Equal(t, domain.KindAccessDenied, domain.KindOf(err))

	// пост на месте
	_, err = posts.PostByID(context.Background(), postID)
	assert.NoError(t, err)
}
