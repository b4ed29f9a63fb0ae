package cart

import (
	"context"
	"sync"
	"testing"

	activityRepo "ziplay/database/repository/activity"
	"ziplay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memCartRepo struct {
	mu      sync.Mutex
	entries []models.CartEntry
	err     error
}

func (m *memCartRepo) GetEntries(context.Context, string) ([]models.CartEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.CartEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *memCartRepo) IncrementEntry(_ context.Context, _ string, activityID, date, slot string, by int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for i := range m.entries {
		e := m.entries[i]
		if e.ActivityID == activityID && e.Date == date && e.Time == slot {
			m.entries[i].Count += by
			return true, nil
		}
	}
	return false, nil
}

func (m *memCartRepo) AppendEntry(_ context.Context, _ string, entry models.CartEntry) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for _, e := range m.entries {
		if e.SameKey(entry) {
			return false, nil
		}
	}
	m.entries = append(m.entries, entry)
	return true, nil
}

func (m *memCartRepo) AdjustActivityCount(_ context.Context, _ string, activityID string, delta int, floor bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i := range m.entries {
		if m.entries[i].ActivityID != activityID {
			continue
		}
		if floor && m.entries[i].Count <= 1 {
			continue
		}
		m.entries[i].Count += delta
	}
	return nil
}

func (m *memCartRepo) RemoveActivity(_ context.Context, _ string, activityID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.ActivityID != activityID {
			kept = append(kept, e)
		}
	}
	m.entries = kept
	return nil
}

func (m *memCartRepo) Clear(context.Context, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries = []models.CartEntry{}
	return nil
}

type stubActivityRepo struct {
	activities map[string]models.Activity
}

func (s *stubActivityRepo) GetByID(_ context.Context, id string) (*models.Activity, error) {
	a, ok := s.activities[id]
	if !ok {
		return nil, activityRepo.ErrNotFound
	}
	return &a, nil
}

func (s *stubActivityRepo) GetAll(context.Context) ([]models.Activity, error) { return nil, nil }
func (s *stubActivityRepo) GetByVenue(context.Context, string) ([]models.Activity, error) {
	return nil, nil
}
func (s *stubActivityRepo) GetByCategory(context.Context, string) ([]models.Activity, error) {
	return nil, nil
}
func (s *stubActivityRepo) SearchByCity(context.Context, string) ([]models.Activity, error) {
	return nil, nil
}
func (s *stubActivityRepo) Create(context.Context, *models.Activity) error { return nil }

func newTestService(activities map[string]models.Activity) (*DefaultCartService, *memCartRepo) {
	repo := &memCartRepo{}
	return &DefaultCartService{
		Repo:       repo,
		Activities: &stubActivityRepo{activities: activities},
		Logger:     zap.NewNop(),
	}, repo
}

func TestAddEntryMergesSameKey(t *testing.T) {
	svc, _ := newTestService(map[string]models.Activity{
		"A1": {ID: "A1", Title: "Go Karting", Price: 300},
	})
	ctx := context.Background()

	in := AddEntryInput{ActivityID: "A1", Date: "2024-05-01", Time: "10:00 AM", Count: 2}
	_, err := svc.AddEntry(ctx, "u1", in)
	require.NoError(t, err)

	in.Count = 3
	entries, err := svc.AddEntry(ctx, "u1", in)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Count)
	assert.Equal(t, "Go Karting", entries[0].Title)
}

func TestAddEntryDistinctKeysStaySeparate(t *testing.T) {
	svc, _ := newTestService(map[string]models.Activity{
		"A1": {ID: "A1", Title: "Go Karting", Price: 300},
	})
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A1", Date: "2024-05-01", Time: "10:00 AM", Count: 1})
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A1", Date: "2024-05-01", Time: "11:00 AM", Count: 1})
	require.NoError(t, err)
	entries, err := svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A1", Date: "2024-05-02", Time: "10:00 AM", Count: 1})
	require.NoError(t, err)

	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, 1, e.Count)
	}
}

func TestAddEntryValidation(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A1", Time: "10:00 AM", Count: 1})
	assert.ErrorIs(t, err, ErrMissingDate)

	_, err = svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A1", Date: "2024-05-01", Count: 1})
	assert.ErrorIs(t, err, ErrMissingTime)

	_, err = svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A1", Date: "2024-05-01", Time: "10:30 AM", Count: 1})
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A1", Date: "2024-05-01", Time: "10:00 AM", Count: 0})
	assert.ErrorIs(t, err, ErrInvalidCount)
}

// racingCartRepo reports no match for the first increments even though the
// entry exists, reproducing the window where a concurrent add pushes the key
// between this caller's increment and its append.
type racingCartRepo struct {
	*memCartRepo
	staleIncrements int
}

func (r *racingCartRepo) IncrementEntry(ctx context.Context, userID, activityID, date, slot string, by int) (bool, error) {
	if r.staleIncrements > 0 {
		r.staleIncrements--
		return false, nil
	}
	return r.memCartRepo.IncrementEntry(ctx, userID, activityID, date, slot, by)
}

func TestAddEntryConcurrentAddOfNewKeyMerges(t *testing.T) {
	svc, repo := newTestService(map[string]models.Activity{
		"A1": {ID: "A1", Title: "Go Karting", Price: 300},
	})
	// The other session already pushed the key.
	repo.entries = []models.CartEntry{
		{ActivityID: "A1", Title: "Go Karting", Date: "2024-05-01", Time: "10:00 AM", Count: 1},
	}
	svc.Repo = &racingCartRepo{memCartRepo: repo, staleIncrements: 1}

	entries, err := svc.AddEntry(context.Background(), "u1", AddEntryInput{
		ActivityID: "A1", Date: "2024-05-01", Time: "10:00 AM", Count: 2,
	})
	require.NoError(t, err)

	// The guarded push must refuse the duplicate key and the retried
	// increment must merge into the existing entry.
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Count)
}

func TestAddEntryNoCartDocument(t *testing.T) {
	svc, repo := newTestService(map[string]models.Activity{
		"A1": {ID: "A1", Title: "Go Karting", Price: 300},
	})
	// When neither the increment nor the guarded push ever lands, the add
	// must give up instead of spinning.
	svc.Repo = &racingCartRepo{memCartRepo: repo, staleIncrements: 10}
	repo.entries = []models.CartEntry{
		{ActivityID: "A1", Title: "Go Karting", Date: "2024-05-01", Time: "10:00 AM", Count: 1},
	}

	_, err := svc.AddEntry(context.Background(), "u1", AddEntryInput{
		ActivityID: "A1", Date: "2024-05-01", Time: "10:00 AM", Count: 2,
	})
	assert.Error(t, err)
}

func TestChangeQuantityFloor(t *testing.T) {
	svc, repo := newTestService(map[string]models.Activity{
		"A1": {ID: "A1", Title: "Go Karting", Price: 300},
	})
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A1", Date: "2024-05-01", Time: "10:00 AM", Count: 2})
	require.NoError(t, err)

	// Two decrements: 2 -> 1, then the floor holds at 1.
	for i := 0; i < 2; i++ {
		entries, err := svc.ChangeQuantity(ctx, "u1", "A1", -1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.GreaterOrEqual(t, entries[0].Count, 1)
	}
	assert.Equal(t, 1, repo.entries[0].Count)

	entries, err := svc.ChangeQuantity(ctx, "u1", "A1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, entries[0].Count)
}

func TestChangeQuantityRejectsOtherDeltas(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.ChangeQuantity(context.Background(), "u1", "A1", 5)
	assert.ErrorIs(t, err, ErrInvalidDelta)
}

func TestRemoveActivityDropsAllVariants(t *testing.T) {
	svc, _ := newTestService(map[string]models.Activity{
		"A1": {ID: "A1", Title: "Go Karting", Price: 300},
		"A2": {ID: "A2", Title: "Bowling", Price: 150},
	})
	ctx := context.Background()

	_, err := svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A1", Date: "2024-05-01", Time: "10:00 AM", Count: 1})
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A1", Date: "2024-05-02", Time: "03:00 PM", Count: 2})
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, "u1", AddEntryInput{ActivityID: "A2", Date: "2024-05-01", Time: "10:00 AM", Count: 1})
	require.NoError(t, err)

	entries, err := svc.RemoveActivity(ctx, "u1", "A1")
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "A2", entries[0].ActivityID)
}

func TestLoadCartResolvesAndPrices(t *testing.T) {
	svc, repo := newTestService(map[string]models.Activity{
		"A1": {ID: "A1", Title: "Go Karting", Price: 300, ImageURL: "http://img/a1"},
	})
	repo.entries = []models.CartEntry{
		{ActivityID: "A1", Title: "Go Karting", Date: "2024-05-01", Time: "10:00 AM", Count: 2},
	}

	items, total, err := svc.LoadCart(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Go Karting", items[0].Title)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 600.0, items[0].Subtotal)
	assert.Equal(t, 600.0, total)
}

func TestLoadCartOmitsDanglingReferences(t *testing.T) {
	svc, repo := newTestService(map[string]models.Activity{
		"A1": {ID: "A1", Title: "Go Karting", Price: 300},
	})
	repo.entries = []models.CartEntry{
		{ActivityID: "A1", Date: "2024-05-01", Time: "10:00 AM", Count: 1},
		{ActivityID: "gone", Date: "2024-05-01", Time: "11:00 AM", Count: 4},
	}

	items, total, err := svc.LoadCart(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "A1", items[0].ActivityID)
	assert.Equal(t, 300.0, total)
}

func TestLoadCartAbortsOnReadError(t *testing.T) {
	svc, repo := newTestService(nil)
	repo.err = assert.AnError

	items, _, err := svc.LoadCart(context.Background(), "u1")
	assert.Error(t, err)
	assert.Nil(t, items)
}
