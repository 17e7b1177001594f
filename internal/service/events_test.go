package service

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

func newEventsService(events *fakeEvents, tags *fakeTags) *Events {
	return &Events{
		Log:    log.New(io.Discard, "", 0),
		Events: events,
		Tags:   tags,
	}
}

func timeptr(t time.Time) *time.Time { return &t }

func TestEventCreateRequiresPrincipal(t *testing.T) {
	t.Parallel()

	s := newEventsService(newFakeEvents(), newFakeTags("folk"))

	_, err := s.Create(context.Background(), EventInput{
		Title:       strptr("t"),
		Description: strptr("d"),
		StartsAt:    timeptr(time.Now().UTC().Add(time.Hour)),
		City:        strptr("Москва"),
		Country:     strptr("Россия"),
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindUnauthenticated, domain.KindOf(err))
}

func TestEventCreateAuthorFromPrincipal(t *testing.T) {
	t.Parallel()

	s := newEventsService(newFakeEvents(), newFakeTags("folk"))
	ctx := ctxWith(domain.Principal{Username: "bob", Role: domain.RoleUser})

	e, err := s.Create(ctx, EventInput{
		Title:       strptr("Фестиваль гуслей"),
		Description: strptr("Два дня концертов"),
		StartsAt:    timeptr(time.Now().UTC().Add(24 * time.Hour)),
		City:        strptr("Псков"),
		Country:     strptr("Россия"),
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", e.Author)
}

func TestEventEditOwnership(t *testing.T) {
	t.Parallel()

	events := newFakeEvents(domain.Event{
		Title: "t", Description: "d", Author: "bob",
		StartsAt: time.Now().UTC().Add(time.Hour),
		City:     "Псков", Country: "Россия",
	})
	var eventID domain.EventID
	for id := range events.byID {
		eventID = id
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
			s := newEventsService(events, newFakeTags("folk"))
			_, err := s.Edit(ctxWith(tt.p), eventID, EventInput{Description: strptr("edited")})
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
		})
	}
}

func TestEventDeleteOwnership(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		p        domain.Principal
		anon     bool
		wantKind domain.ErrorKind // "" = успех
	}{
		{"owner can delete", domain.Principal{Username: "bob", Role: domain.RoleUser}, false, ""},
		{"admin can delete", domain.Principal{Username: "carol", Role: domain.RoleAdmin}, false, ""},
		{"stranger denied", domain.Principal{Username: "dave", Role: domain.RoleUser}, false, domain.KindAccessDenied},
		{"anonymous denied", domain.Principal{}, true, domain.KindUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := newFakeEvents(domain.Event{
				Title: "t", Description: "d", Author: "bob",
				StartsAt: time.Now().UTC().Add(time.Hour),
				City:     "Псков", Country: "Россия",
			})
			var eventID domain.EventID
			for id := range events.byID {
				eventID = id
			}
			s := newEventsService(events, newFakeTags("folk"))

			ctx := context.Background()
			if !tt.anon {
				ctx = ctxWith(tt.p)
			}
			err := s.Delete(ctx, eventID)
			if tt.wantKind == "" {
				require.NoError(t, err)
				_, err = events.EventByID(context.Background(), eventID)
				assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domain.KindOf(err))
			// событие на месте
			_, err = events.EventByID(context.Background(), eventID)
			assert.NoError(t, err)
		})
	}
}
