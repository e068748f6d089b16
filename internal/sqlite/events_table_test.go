// Unit tests for the events table accessor.
package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvanote/sylvanote/pkg/types"
)

func eventsTableFor(t *testing.T, b *Backend) types.Table {
	t.Helper()
	table, err := b.GetTable(types.TableEvents)
	require.NoError(t, err)
	return table
}

func TestEventsRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)
	table := eventsTableFor(t, b)

	created := time.Date(2024, 5, 4, 9, 0, 0, 0, time.UTC)
	event := &types.Event{
		CreatedAt:   created,
		UpdatedAt:   created,
		Title:       "Wedding",
		Date:        strp("1835-07-08"),
		Description: strp("Married at Fordhook."),
		Location:    strp("Ealing"),
		Tags:        []string{"family"},
		// Dangling participant ids are allowed: no referential integrity.
		Participants: []string{uuid.NewString(), uuid.NewString()},
	}

	id, err := table.Set(ctx, "", event)
	require.NoError(t, err)

	rec, err := table.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, event, rec.(*types.Event))
}

func TestEventsCreateDefaults(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)
	table := eventsTableFor(t, b)

	id, err := table.Set(ctx, "", &types.Event{Title: "Birth"})
	require.NoError(t, err)

	rec, err := table.Get(ctx, id)
	require.NoError(t, err)
	got := rec.(*types.Event)
	assert.Equal(t, []string{}, got.Tags)
	assert.Equal(t, []string{}, got.Participants)
	assert.Nil(t, got.Date)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestEventsRejectsMissingTitle(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)
	table := eventsTableFor(t, b)

	_, err := table.Set(ctx, "", &types.Event{})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestEventsDelete(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)
	table := eventsTableFor(t, b)

	id, err := table.Set(ctx, "", &types.Event{Title: "Wedding"})
	require.NoError(t, err)

	require.NoError(t, table.Delete(ctx, id))
	_, err = table.Get(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, table.Delete(ctx, uuid.NewString()), types.ErrNotFound)
}

func TestEventsReplace(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)
	table := eventsTableFor(t, b)

	id, err := table.Set(ctx, "", &types.Event{Title: "Wedding"})
	require.NoError(t, err)
	rec, err := table.Get(ctx, id)
	require.NoError(t, err)
	original := rec.(*types.Event)

	_, err = table.Set(ctx, id, &types.Event{
		CreatedAt: original.CreatedAt,
		Title:     "Wedding Day",
		Location:  strp("Ealing"),
	})
	require.NoError(t, err)

	rec, err = table.Get(ctx, id)
	require.NoError(t, err)
	got := rec.(*types.Event)
	assert.Equal(t, "Wedding Day", got.Title)
	assert.True(t, got.CreatedAt.Equal(original.CreatedAt))
	assert.True(t, got.UpdatedAt.After(original.UpdatedAt))
}
