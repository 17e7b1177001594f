package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

// --- фейковый UsersRepo (in-memory) ---

type fakeUsers struct {
	byUsername map[string]domain.User
}

func newFakeUsers(users ...domain.User) *fakeUsers {
	f := &fakeUsers{byUsername: map[string]domain.User{}}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		f.byUsername[u.Username] = u
	}
	return f
}

func (f *fakeUsers) Close()                            {}
func (f *fakeUsers) Ping(context.Context) error        { return nil }
func (f *fakeUsers) CreateUser(_ context.Context, u domain.User) (domain.User, error) {
	if _, ok := f.byUsername[u.Username]; ok {
		return domain.User{}, domain.E(domain.KindUsernameTaken, "Username already taken: "+u.Username)
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now().UTC()
	f.byUsername[u.Username] = u
	return u, nil
}
func (f *fakeUsers) UserByUsername(_ context.Context, username string) (domain.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return domain.User{}, domain.E(domain.KindNotFound, "User not found: "+username)
	}
	return u, nil
}
func (f *fakeUsers) UserByID(_ context.Context, id domain.UserID) (domain.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.E(domain.KindNotFound, "User not found")
}
func (f *fakeUsers) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}
func (f *fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.byUsername {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
func (f *fakeUsers) DeleteUser(_ context.Context, id domain.UserID) error {
	for name, u := range f.byUsername {
		if u.ID == id {
			delete(f.byUsername, name)
			return nil
		}
	}
	return domain.E(domain.KindNotFound, "User not found")
}
func (f *fakeUsers) SetBanned(_ context.Context, id domain.UserID, banned bool) error {
	for name, u := range f.byUsername {
		if u.ID == id {
			u.Banned = banned
			f.byUsername[name] = u
			return nil
		}
	}
	return domain.E(domain.KindNotFound, "User not found")
}
func (f *fakeUsers) AddInterest(context.Context, string, domain.TagID) error    { return nil }
func (f *fakeUsers) RemoveInterest(context.Context, string, domain.TagID) error { return nil }

// --- фейковый хешер: считает вызовы, без настоящей криптографии ---

type fakeHasher struct {
	hashCalls   int
	verifyCalls int
}

func (f *fakeHasher) Hash(plain string) (string, error) {
	f.hashCalls++
	return "hashed:" + plain, nil
}

func (f *fakeHasher) Verify(plain, encoded string) (bool, error) {
	f.verifyCalls++
	return strings.TrimPrefix(encoded, "hashed:") == plain, nil
}

// --- фейковый PostsRepo ---

type fakePosts struct {
	byID map[domain.PostID]domain.Post
}

func newFakePosts(posts ...domain.Post) *fakePosts {
	f := &fakePosts{byID: map[domain.PostID]domain.Post{}}
	for _, p := range posts {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakePosts) CreatePost(_ context.Context, p domain.Post) (domain.Post, error) {
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	f.byID[p.ID] = p
	return p, nil
}
func (f *fakePosts) PostByID(_ context.Context, id domain.PostID) (domain.Post, error) {
	p, ok := f.byID[id]
	if !ok {
		return domain.Post{}, domain.E(domain.KindNotFound, "Post not found")
	}
	return p, nil
}
func (f *fakePosts) PostsAll(context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakePosts) PostsByTag(context.Context, domain.TagID) ([]domain.Post, error) {
	return nil, nil
}
func (f *fakePosts) UpdatePost(_ context.Context, p domain.Post) (domain.Post, error) {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.Post{}, domain.E(domain.KindNotFound, "Post not found")
	}
	f.byID[p.ID] = p
	return p, nil
}
func (f *fakePosts) DeletePost(_ context.Context, id domain.PostID) error {
	if _, ok := f.byID[id]; !ok {
		return domain.E(domain.KindNotFound, "Post not found")
	}
	delete(f.byID, id)
	return nil
}

// --- фейковый EventsRepo ---

type fakeEvents struct {
	byID map[domain.EventID]domain.Event
}

func newFakeEvents(events ...domain.Event) *fakeEvents {
	f := &fakeEvents{byID: map[domain.EventID]domain.Event{}}
	for _, e := range events {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEvents) CreateEvent(_ context.Context, e domain.Event) (domain.Event, error) {
	e.ID = uuid.New()
	e.CreatedAt = time.Now().UTC()
	f.byID[e.ID] = e
	return e, nil
}
func (f *fakeEvents) EventByID(_ context.Context, id domain.EventID) (domain.Event, error) {
	e, ok := f.byID[id]
	if !ok {
		return domain.Event{}, domain.E(domain.KindNotFound, "Event not found")
	}
	return e, nil
}
func (f *fakeEvents) EventsAll(context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}
func (f *fakeEvents) EventsByTag(context.Context, domain.TagID) ([]domain.Event, error) {
	return nil, nil
}
func (f *fakeEvents) EventsUpcoming(_ context.Context, after time.Time) ([]domain.Event, error) {
	out := []domain.Event{}
	for _, e := range f.byID {
		if e.StartsAt.After(after) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeEvents) UpdateEvent(_ context.Context, e domain.Event) (domain.Event, error) {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.Event{}, domain.E(domain.KindNotFound, "Event not found")
	}
	f.byID[e.ID] = e
	return e, nil
}
func (f *fakeEvents) DeleteEvent(_ context.Context, id domain.EventID) error {
	if _, ok := f.byID[id]; !ok {
		return domain.E(domain.KindNotFound, "Event not found")
	}
	delete(f.byID, id)
	return nil
}

// --- фейковый CommentsRepo ---

type fakeComments struct {
	byID map[domain.CommentID]domain.Comment
}

func newFakeComments(comments ...domain.Comment) *fakeComments {
	f := &fakeComments{byID: map[domain.CommentID]domain.Comment{}}
	for _, c := range comments {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeComments) CreateComment(_ context.Context, c domain.Comment) (domain.Comment, error) {
	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()
	f.byID[c.ID] = c
	return c, nil
}
func (f *fakeComments) CommentByID(_ context.Context, id domain.CommentID) (domain.Comment, error) {
	c, ok := f.byID[id]
	if !ok {
		return domain.Comment{}, domain.E(domain.KindNotFound, "Comment not found")
	}
	return c, nil
}
func (f *fakeComments) CommentsByPost(_ context.Context, postID domain.PostID) ([]domain.Comment, error) {
	out := []domain.Comment{}
	for _, c := range f.byID {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeComments) UpdateComment(_ context.Context, id domain.CommentID, content string) (domain.Comment, error) {
	c, ok := f.byID[id]
	if !ok {
		return domain.Comment{}, domain.E(domain.KindNotFound, "Comment not found")
	}
	c.Content = content
	f.byID[id] = c
	return c, nil
}
func (f *fakeComments) DeleteComment(_ context.Context, id domain.CommentID) error {
	if _, ok := f.byID[id]; !ok {
		return domain.E(domain.KindNotFound, "Comment not found")
	}
	delete(f.byID, id)
	return nil
}

// --- фейковый TagsRepo ---

type fakeTags struct {
	byID  map[domain.TagID]domain.Tag
	inUse map[domain.TagID]bool
}

func newFakeTags(names ...string) *fakeTags {
	f := &fakeTags{byID: map[domain.TagID]domain.Tag{}, inUse: map[domain.TagID]bool{}}
	for _, n := range names {
		id := uuid.New()
		f.byID[id] = domain.Tag{ID: id, Name: n}
	}
	return f
}

func (f *fakeTags) anyID() domain.TagID {
	for id := range f.byID {
		return id
	}
	return uuid.Nil
}

func (f *fakeTags) CreateTag(_ context.Context, name string) (domain.Tag, error) {
	id := uuid.New()
	t := domain.Tag{ID: id, Name: name}
	f.byID[id] = t
	return t, nil
}
func (f *fakeTags) TagByID(_ context.Context, id domain.TagID) (domain.Tag, error) {
	t, ok := f.byID[id]
	if !ok {
		return domain.Tag{}, domain.E(domain.KindNotFound, "Tag not found")
	}
	return t, nil
}
func (f *fakeTags) TagsAll(context.Context) ([]domain.Tag, error) {
	out := make([]domain.Tag, 0, len(f.byID))
	for _, t := range f.byID {
		out = append(out, t)
	}
	return out, nil
}
func (f *fakeTags) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, t := range f.byID {
		if strings.EqualFold(t.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
func (f *fakeTags) RenameTag(_ context.Context, id domain.TagID, name string) (domain.Tag, error) {
	t, ok := f.byID[id]
	if !ok {
		return domain.Tag{}, domain.E(domain.KindNotFound, "Tag not found")
	}
	t.Name = name
	f.byID[id] = t
	return t, nil
}
func (f *fakeTags) DeleteTag(_ context.Context, id domain.TagID) error {
	delete(f.byID, id)
	return nil
}
func (f *fakeTags) TagInUse(_ context.Context, id domain.TagID) (bool, error) {
	return f.inUse[id], nil
}
