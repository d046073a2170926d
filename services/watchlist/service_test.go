package watchlist_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"wayfare/internal/database"
	"wayfare/services/accounts"
	"wayfare/services/watchlist"
)

func newTestService(t *testing.T) *watchlist.Service {
	t.Helper()

	db, err := database.NewDB(database.Config{DatabasePath: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = accounts.NewService(db, bcrypt.MinCost).Register(context.Background(), "alice", "secret")
	require.NoError(t, err)

	return watchlist.NewService(db)
}

func TestAddIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	outcome, err := svc.Add(ctx, "alice", "Bali")
	require.NoError(t, err)
	assert.Equal(t, watchlist.OutcomeAdded, outcome)

	outcome, err = svc.Add(ctx, "alice", "Bali")
	require.NoError(t, err)
	assert.Equal(t, watchlist.OutcomeAlreadyPresent, outcome)

	list, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bali"}, list)
}

func TestAddValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "alice", "")
	assert.ErrorIs(t, err, watchlist.ErrEmptyDestination)

	_, err = svc.Add(ctx, "nobody", "Bali")
	assert.ErrorIs(t, err, watchlist.ErrUserNotFound)

	_, err = svc.List(ctx, "nobody")
	assert.ErrorIs(t, err, watchlist.ErrUserNotFound)
}

func TestListEmpty(t *testing.T) {
	svc := newTestService(t)

	list, err := svc.List(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListPreservesInsertionUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, d := range []string{"Bali", "Rome", "Bali", "Paris"} {
		_, err := svc.Add(ctx, "alice", d)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Bali", "Rome", "Paris"}, list)
}

func TestConcurrentAddsSameDestination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var added int64
	results := make(chan watchlist.AddOutcome, 32)

	var wg conc.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Go(func() {
			outcome, err := svc.Add(ctx, "alice", "Bali")
			assert.NoError(t, err)
			results <- outcome
		})
	}
	wg.Wait()
	close(results)

	for outcome := range results {
		if outcome == watchlist.OutcomeAdded {
			added++
		}
	}
	assert.Equal(t, int64(1), added, "exactly one concurrent add may report Added")

	list, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bali"}, list)
}

func TestConcurrentAddsDistinctDestinations(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var wg conc.WaitGroup
	for _, d := range []string{"Bali", "Rome"} {
		wg.Go(func() {
			_, err := svc.Add(ctx, "alice", d)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	list, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Bali", "Rome"}, list)
}
