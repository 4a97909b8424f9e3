package watchlist_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/marquee/internal/watchlist"
	"github.com/narwhalmedia/marquee/test/testutil"
)

func TestAdd_UniqueByID(t *testing.T) {
	w := watchlist.New()
	a := testutil.CreateTestMovie(1, "A")
	b := testutil.CreateTestMovie(2, "B")

	w.Add(a)
	w.Add(b)
	got := w.Add(testutil.CreateTestMovie(1, "A again"))

	require.Len(t, got.Movies, 2)
	assert.Equal(t, "A", got.Movies[0].Title)
	assert.Equal(t, "B", got.Movies[1].Title)
}

func TestRemove(t *testing.T) {
	w := watchlist.New()
	w.Add(testutil.CreateTestMovie(1, "A"))
	w.Add(testutil.CreateTestMovie(2, "B"))
	w.Add(testutil.CreateTestMovie(3, "C"))

	got := w.Remove(2)
	require.Len(t, got.Movies, 2)
	assert.Equal(t, 1, got.Movies[0].ID)
	assert.Equal(t, 3, got.Movies[1].ID)

	assert.Equal(t, got, w.Remove(42))
	assert.False(t, w.Contains(2))
}

func TestToggle(t *testing.T) {
	w := watchlist.New()
	movie := testutil.CreateTestMovie(9, "Nine")

	assert.True(t, w.Toggle(movie).Contains(9))
	assert.False(t, w.Toggle(movie).Contains(9))
}

func TestSnapshotIsACopy(t *testing.T) {
	w := watchlist.New()
	w.Add(testutil.CreateTestMovie(1, "A"))

	snap := w.Snapshot()
	snap.Movies[0].Title = "changed"

	assert.Equal(t, "A", w.Snapshot().Movies[0].Title)
}

func TestConcurrentAdds(t *testing.T) {
	w := watchlist.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			w.Add(testutil.CreateTestMovie(id%10, "m"))
		}(i)
	}
	wg.Wait()

	assert.Len(t, w.Snapshot().Movies, 10)
}
