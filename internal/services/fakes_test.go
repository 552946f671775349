package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"eventpoll/internal/domain"
)

// testLogger discards output so tests don't assert on logs.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testTimeout = 5 * time.Second

// fakeStore is an in-memory EventRepository and VoteRepository sharing one event map.
type fakeStore struct {
	mu         sync.Mutex
	byID       map[string]*domain.Event
	createErr  error
	getErr     error
	listErr    error
	replaceErr error
	deleteErr  error
	voteErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[string]*domain.Event)}
}

func cloneEvent(e *domain.Event) *domain.Event {
	c := *e
	c.DateOptions = make([]*domain.DateOption, len(e.DateOptions))
	for i, o := range e.DateOptions {
		oc := *o
		oc.Voters = append([]string{}, o.Voters...)
		c.DateOptions[i] = &oc
	}
	c.Participants = make([]*domain.Participant, len(e.Participants))
	for i, p := range e.Participants {
		pc := *p
		c.Participants[i] = &pc
	}
	return &c
}

func (f *fakeStore) put(e *domain.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[e.ID] = cloneEvent(e)
}

func (f *fakeStore) stored(id string) *domain.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.byID[id]; ok {
		return cloneEvent(e)
	}
	return nil
}

func (f *fakeStore) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.put(e)
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e := f.stored(id); e != nil {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStore) sorted(match func(e *domain.Event) bool) []*domain.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Event
	for _, e := range f.byID {
		if match(e) {
			out = append(out, cloneEvent(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeStore) ListByCreator(ctx context.Context, creatorID string) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sorted(func(e *domain.Event) bool { return e.CreatorID == creatorID }), nil
}

func (f *fakeStore) ListByParticipantEmail(ctx context.Context, email, excludeCreatorID string) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sorted(func(e *domain.Event) bool {
		return e.CreatorID != excludeCreatorID && e.Participant(email) != nil
	}), nil
}

func (f *fakeStore) Replace(ctx context.Context, e *domain.Event) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	if f.stored(e.ID) == nil {
		return domain.ErrNotFound
	}
	f.put(e)
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeStore) UpdateParticipantStatus(ctx context.Context, eventID, email string, from, to domain.ParticipantStatus, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[eventID]
	if !ok {
		return domain.ErrNotFound
	}
	p := e.Participant(email)
	if p == nil || p.Status != from {
		return domain.ErrInvalidTransition
	}
	p.Status = to
	e.UpdatedAt = at
	return nil
}

func (f *fakeStore) Cast(ctx context.Context, eventID, optionID, userID string, at time.Time) error {
	if f.voteErr != nil {
		return f.voteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[eventID]
	if !ok {
		return domain.ErrNotFound
	}
	target := e.Option(optionID)
	if target == nil {
		return domain.ErrNotFound
	}
	for _, o := range e.DateOptions {
		o.Voters = removeVoter(o.Voters, userID)
	}
	target.Voters = append(target.Voters, userID)
	e.UpdatedAt = at
	return nil
}

func (f *fakeStore) Retract(ctx context.Context, eventID, userID string, at time.Time) error {
	if f.voteErr != nil {
		return f.voteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[eventID]
	if !ok {
		return domain.ErrNotFound
	}
	removed := false
	for _, o := range e.DateOptions {
		before := len(o.Voters)
		o.Voters = removeVoter(o.Voters, userID)
		if len(o.Voters) < before {
			removed = true
		}
	}
	if !removed {
		return domain.ErrNoVote
	}
	e.UpdatedAt = at
	return nil
}

func (f *fakeStore) Status(ctx context.Context, eventID, userID string) (*domain.VoteStatus, error) {
	if f.voteErr != nil {
		return nil, f.voteErr
	}
	e := f.stored(eventID)
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if id, ok := e.VoteOf(userID); ok {
		return &domain.VoteStatus{HasVoted: true, SelectedOption: &id}, nil
	}
	return &domain.VoteStatus{}, nil
}

func removeVoter(voters []string, userID string) []string {
	out := voters[:0]
	for _, v := range voters {
		if v != userID {
			out = append(out, v)
		}
	}
	return out
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byID map[string]*domain.User
	err  error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[string]*domain.User)}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Upsert(ctx context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.byID[u.ID] = u
	return nil
}

// fakeEmailService records invitations.
type fakeEmailService struct {
	sent []*domain.EventInvitationEmailData
	err  error
}

func (f *fakeEmailService) SendEventInvitation(ctx context.Context, data *domain.EventInvitationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

func (f *fakeEmailService) recipients() []string {
	out := make([]string, len(f.sent))
	for i, d := range f.sent {
		out[i] = d.Email
	}
	return out
}

// fakePollCache is an in-memory PollCache.
type fakePollCache struct {
	polls       map[string]*domain.Poll
	invalidated []string
	getErr      error
	sets        int
}

func newFakePollCache() *fakePollCache {
	return &fakePollCache{polls: make(map[string]*domain.Poll)}
}

func (f *fakePollCache) Get(ctx context.Context, eventID string) (*domain.Poll, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	p, ok := f.polls[eventID]
	return p, ok, nil
}

func (f *fakePollCache) Set(ctx context.Context, eventID string, poll *domain.Poll) error {
	f.sets++
	f.polls[eventID] = poll
	return nil
}

func (f *fakePollCache) Invalidate(ctx context.Context, eventID string) error {
	f.invalidated = append(f.invalidated, eventID)
	delete(f.polls, eventID)
	return nil
}

// fakeExporter returns a fixed document.
type fakeExporter struct {
	lastEvent *domain.Event
	lastPoll  *domain.Poll
	err       error
}

func (f *fakeExporter) Export(e *domain.Event, poll *domain.Poll) ([]byte, error) {
	f.lastEvent = e
	f.lastPoll = poll
	if f.err != nil {
		return nil, f.err
	}
	return []byte("BEGIN:VCALENDAR"), nil
}

var errDB = errors.New("db down")

var (
	bob   = &domain.User{ID: "user-bob", Username: "bob", Email: "bob@example.com"}
	alice = &domain.User{ID: "user-alice", Username: "alice", Email: "alice@x.com"}
	carol = &domain.User{ID: "user-carol", Username: "carol", Email: "carol@x.com"}
)

var (
	t1 = time.Date(2025, 3, 3, 18, 30, 0, 0, time.UTC)
	t2 = time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
)

// seedEvent stores a ready-made event created by bob with alice pending.
func seedEvent(store *fakeStore, id string, createdAt time.Time) *domain.Event {
	e := &domain.Event{
		ID:           id,
		Title:        "Team dinner",
		Description:  "Pick a night",
		CreatorID:    bob.ID,
		Creator:      bob.Summary(),
		PollQuestion: domain.DefaultPollQuestion,
		DateOptions: []*domain.DateOption{
			{ID: id + "-opt-1", Date: t1, Voters: []string{}},
			{ID: id + "-opt-2", Date: t2, Voters: []string{}},
		},
		Participants: []*domain.Participant{
			{Email: bob.Email, Status: domain.StatusAccepted},
			{Email: alice.Email, Status: domain.StatusPending},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	store.put(e)
	return e
}
