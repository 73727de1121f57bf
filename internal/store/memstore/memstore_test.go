package memstore

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/memtodo/internal/model"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	for _, policy := range []IDPolicy{Monotonic, CountBased} {
		t.Run(policy.String(), func(t *testing.T) {
			l := New(WithIDPolicy(policy))
			titles := []string{"a", "b", "", "d"}
			for i, title := range titles {
				got := l.Create(title)
				assert.Equal(t, uint64(i+1), got.ID)
				assert.Equal(t, title, got.Title)
				assert.False(t, got.Completed)
			}
			assert.Equal(t, len(titles), l.Len())
		})
	}
}

func TestReadReturnsLatestState(t *testing.T) {
	l := New()
	created := l.Create("Buy milk")

	got, err := l.Read(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := l.Update(created.ID, model.Patch{}.WithTitle("Buy oat milk"))
	require.NoError(t, err)

	got, err = l.Read(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, "Buy oat milk", got.Title)
}

func TestReadUnknownID(t *testing.T) {
	l := New()
	l.Create("a")

	for _, id := range []uint64{0, 2, 99} {
		_, err := l.Read(id)
		assert.ErrorIs(t, err, ErrNotFound, "id %d", id)
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name  string
		patch model.Patch
		want  model.Todo
	}{
		{
			name:  "empty patch leaves record unchanged",
			patch: model.Patch{},
			want:  model.Todo{ID: 1, Title: "Buy milk"},
		},
		{
			name:  "title only",
			patch: model.Patch{}.WithTitle("Buy bread"),
			want:  model.Todo{ID: 1, Title: "Buy bread"},
		},
		{
			name:  "completed only",
			patch: model.Patch{}.WithCompleted(true),
			want:  model.Todo{ID: 1, Title: "Buy milk", Completed: true},
		},
		{
			name:  "both fields",
			patch: model.Patch{}.WithTitle("").WithCompleted(true),
			want:  model.Todo{ID: 1, Title: "", Completed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			l.Create("Buy milk")
			l.Create("Walk dog")

			got, err := l.Update(1, tt.patch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			other, err := l.Read(2)
			require.NoError(t, err)
			assert.Equal(t, model.Todo{ID: 2, Title: "Walk dog"}, other)
		})
	}
}

func TestUpdateUnknownIDDoesNotMutate(t *testing.T) {
	l := New()
	l.Create("a")
	l.Create("b")
	before := l.List()

	_, err := l.Update(3, model.Patch{}.WithTitle("x").WithCompleted(true))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, l.List())
}

func TestDelete(t *testing.T) {
	l := New()
	l.Create("a")
	l.Create("b")
	l.Create("c")

	assert.True(t, l.Delete(2))
	_, err := l.Read(2)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []model.Todo{
		{ID: 1, Title: "a"},
		{ID: 3, Title: "c"},
	}, l.List())

	assert.False(t, l.Delete(2), "second delete of the same id")
}

func TestDeleteUnknownIDLeavesListUnchanged(t *testing.T) {
	l := New()
	l.Create("a")
	l.Create("b")
	before := l.List()

	assert.False(t, l.Delete(42))
	assert.Equal(t, before, l.List())
}

func TestListIsACopy(t *testing.T) {
	l := New()
	l.Create("a")

	items := l.List()
	items[0].Title = "mutated"

	got, err := l.Read(1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
}

func TestListEmpty(t *testing.T) {
	l := New()
	assert.NotNil(t, l.List())
	assert.Empty(t, l.List())
}

// Create A, Create B, Delete 1, Create C: the two policies diverge here.
func TestIDAllocationAfterDelete(t *testing.T) {
	tests := []struct {
		policy IDPolicy
		want   []model.Todo
	}{
		{
			policy: Monotonic,
			want: []model.Todo{
				{ID: 2, Title: "B"},
				{ID: 3, Title: "C"},
			},
		},
		{
			policy: CountBased,
			want: []model.Todo{
				{ID: 2, Title: "B"},
				{ID: 2, Title: "C"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			l := New(WithIDPolicy(tt.policy))
			l.Create("A")
			l.Create("B")
			require.True(t, l.Delete(1))
			l.Create("C")
			assert.Equal(t, tt.want, l.List())
		})
	}
}

func TestCountBasedCollisionResolvesToFirstMatch(t *testing.T) {
	l := New(WithIDPolicy(CountBased))
	l.Create("A")
	l.Create("B")
	l.Delete(1)
	l.Create("C")

	got, err := l.Read(2)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Title)

	require.True(t, l.Delete(2))
	got, err = l.Read(2)
	require.NoError(t, err)
	assert.Equal(t, "C", got.Title)
}

func TestEndToEndScenario(t *testing.T) {
	l := New()

	milk := l.Create("Buy milk")
	assert.Equal(t, model.Todo{ID: 1, Title: "Buy milk"}, milk)
	dog := l.Create("Walk dog")
	assert.Equal(t, uint64(2), dog.ID)

	got, err := l.Update(1, model.Patch{}.WithCompleted(true))
	require.NoError(t, err)
	assert.Equal(t, model.Todo{ID: 1, Title: "Buy milk", Completed: true}, got)

	assert.True(t, l.Delete(2))
	_, err = l.Read(2)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []model.Todo{{ID: 1, Title: "Buy milk", Completed: true}}, l.List())
}

func TestParseIDPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    IDPolicy
		wantErr bool
	}{
		{in: "", want: Monotonic},
		{in: "monotonic", want: Monotonic},
		{in: " Count ", want: CountBased},
		{in: "count-based", want: CountBased},
		{in: "random", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseIDPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMutationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	l := New(WithLogger(logger))
	l.Create("a")
	_, _ = l.Update(1, model.Patch{}.WithCompleted(true))
	l.Delete(1)

	out := buf.String()
	assert.Contains(t, out, "created todo")
	assert.Contains(t, out, "updated todo")
	assert.Contains(t, out, "deleted todo")
}
