package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lunarly/eventbus"
	"lunarly/models"
	"lunarly/repositories"
)

// memState is a single in-memory stand-in for the three collections. All
// fake stores share one instance so transactional rollback can restore a
// consistent snapshot.
type memState struct {
	mu       sync.Mutex
	dreams   map[primitive.ObjectID]models.Dream
	analyses map[primitive.ObjectID]models.Analysis
	stats    map[string]models.Stats
}

func newMemState() *memState {
	return &memState{
		dreams:   make(map[primitive.ObjectID]models.Dream),
		analyses: make(map[primitive.ObjectID]models.Analysis),
		stats:    make(map[string]models.Stats),
	}
}

func cloneDream(d models.Dream) models.Dream {
	if d.AnalysisID != nil {
		id := *d.AnalysisID
		d.AnalysisID = &id
	}
	return d
}

func (s *memState) snapshot() *memState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := newMemState()
	for id, d := range s.dreams {
		snap.dreams[id] = cloneDream(d)
	}
	for id, a := range s.analyses {
		snap.analyses[id] = a
	}
	for uid, st := range s.stats {
		snap.stats[uid] = st
	}
	return snap
}

func (s *memState) restore(snap *memState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dreams = snap.dreams
	s.analyses = snap.analyses
	s.stats = snap.stats
}

func (s *memState) putDream(d models.Dream) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dreams[d.ID] = cloneDream(d)
}

func (s *memState) dreamCount(uid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, d := range s.dreams {
		if d.UID == uid {
			n++
		}
	}
	return n
}

func (s *memState) analysisCount(uid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.analyses {
		if a.UID == uid {
			n++
		}
	}
	return n
}

func (s *memState) userStats(uid string) models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats[uid]
}

type fakeDreamStore struct{ st *memState }

func (f *fakeDreamStore) Insert(_ context.Context, d *models.Dream) (primitive.ObjectID, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	now := time.Now()
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	d.CreatedAt = now
	d.UpdatedAt = now
	d.AnalysisID = nil
	f.st.dreams[d.ID] = cloneDream(*d)
	return d.ID, nil
}

func (f *fakeDreamStore) FindByID(_ context.Context, uid string, id primitive.ObjectID) (*models.Dream, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	d, ok := f.st.dreams[id]
	if !ok || d.UID != uid {
		return nil, nil
	}
	out := cloneDream(d)
	return &out, nil
}

func (f *fakeDreamStore) FindByUser(_ context.Context, uid string) ([]models.Dream, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var out []models.Dream
	for _, d := range f.st.dreams {
		if d.UID == uid {
			out = append(out, cloneDream(d))
		}
	}
	return out, nil
}

func (f *fakeDreamStore) FindByUserAndDay(_ context.Context, uid string, day time.Time) ([]models.Dream, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var out []models.Dream
	for _, d := range f.st.dreams {
		if d.UID == uid && !d.Date.Before(start) && d.Date.Before(end) {
			out = append(out, cloneDream(d))
		}
	}
	return out, nil
}

func (f *fakeDreamStore) Update(_ context.Context, uid string, id primitive.ObjectID, upd repositories.DreamUpdate) (bool, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	d, ok := f.st.dreams[id]
	if !ok || d.UID != uid {
		return false, nil
	}
	if upd.Title != nil {
		d.Title = *upd.Title
	}
	if upd.Body != nil {
		d.Body = *upd.Body
	}
	if upd.Date != nil {
		d.Date = *upd.Date
	}
	d.UpdatedAt = time.Now()
	f.st.dreams[id] = d
	return true, nil
}

func (f *fakeDreamStore) Delete(_ context.Context, uid string, id primitive.ObjectID) (bool, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	d, ok := f.st.dreams[id]
	if !ok || d.UID != uid {
		return false, nil
	}
	delete(f.st.dreams, id)
	return true, nil
}

func (f *fakeDreamStore) LinkAnalysis(_ context.Context, uid string, dreamID, analysisID primitive.ObjectID) (bool, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	d, ok := f.st.dreams[dreamID]
	if !ok || d.UID != uid || d.AnalysisID != nil {
		return false, nil
	}
	d.AnalysisID = &analysisID
	d.UpdatedAt = time.Now()
	f.st.dreams[dreamID] = d
	return true, nil
}

type fakeAnalysisStore struct{ st *memState }

func (f *fakeAnalysisStore) Insert(_ context.Context, a *models.Analysis) (primitive.ObjectID, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	f.st.analyses[a.ID] = *a
	return a.ID, nil
}

func (f *fakeAnalysisStore) FindByID(_ context.Context, uid string, id primitive.ObjectID) (*models.Analysis, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	a, ok := f.st.analyses[id]
	if !ok || a.UID != uid {
		return nil, nil
	}
	out := a
	return &out, nil
}

type fakeUserStore struct{ st *memState }

func (f *fakeUserStore) IncStats(_ context.Context, uid string, totalDreams, analysesUsed int64) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	st := f.st.stats[uid]
	st.TotalDreams += totalDreams
	st.AnalysesUsed += analysesUsed
	f.st.stats[uid] = st
	return nil
}

func (f *fakeUserStore) Stats(_ context.Context, uid string) (models.Stats, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	return f.st.stats[uid], nil
}

// fakeTxnRunner serializes transactions and rolls the shared state back
// to its pre-transaction snapshot when fn fails, mirroring the
// all-or-nothing contract of the Mongo runner.
type fakeTxnRunner struct {
	st    *memState
	txnMu sync.Mutex
}

func (f *fakeTxnRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.txnMu.Lock()
	defer f.txnMu.Unlock()
	snap := f.st.snapshot()
	if err := fn(ctx); err != nil {
		f.st.restore(snap)
		return err
	}
	return nil
}

// countingInvoker returns a canned reply and records how many times it
// was consulted.
type countingInvoker struct {
	calls atomic.Int32
	text  string
	model string
	err   error
}

func (c *countingInvoker) Invoke(context.Context, string) (string, string, error) {
	c.calls.Add(1)
	if c.err != nil {
		return "", "", c.err
	}
	return c.text, c.model, nil
}

type fakeQuota struct {
	ok  bool
	err error
}

func (f *fakeQuota) WaitAndReserve(context.Context) (bool, error) {
	return f.ok, f.err
}

// capturingPublisher records published events.
type capturingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []eventbus.Event
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, ev eventbus.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, ev)
	return nil
}

func (p *capturingPublisher) Close() {}

func (p *capturingPublisher) published() []eventbus.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]eventbus.Event, len(p.events))
	copy(out, p.events)
	return out
}
