// Unit tests for the relationships table accessor.
package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvanote/sylvanote/pkg/types"
)

func relationshipsTableFor(t *testing.T, b *Backend) types.Table {
	t.Helper()
	table, err := b.GetTable(types.TableRelationships)
	require.NoError(t, err)
	return table
}

func TestRelationshipsRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)
	table := relationshipsTableFor(t, b)

	edge := &types.RelationshipEdge{
		FromID:    uuid.NewString(),
		ToID:      uuid.NewString(),
		Type:      types.RelSpouseOf,
		StartDate: strp("1835-07-08"),
		EndDate:   strp("1852-11-27"),
		Notes:     strp("Until her death."),
	}

	id, err := table.Set(ctx, "", edge)
	require.NoError(t, err)

	rec, err := table.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, edge, rec.(*types.RelationshipEdge))
}

func TestRelationshipsTypeClosure(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)
	table := relationshipsTableFor(t, b)

	from, to := uuid.NewString(), uuid.NewString()

	for _, rel := range []string{types.RelParentOf, types.RelSpouseOf, types.RelAdoptedParentOf, types.RelDivorcedSpouseOf} {
		_, err := table.Set(ctx, "", &types.RelationshipEdge{FromID: from, ToID: to, Type: rel})
		assert.NoError(t, err, rel)
	}

	_, err := table.Set(ctx, "", &types.RelationshipEdge{FromID: from, ToID: to, Type: "SIBLING_OF"})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestRelationshipsPermissiveEdges(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)
	table := relationshipsTableFor(t, b)

	from, to := uuid.NewString(), uuid.NewString()

	t.Run("duplicate edges allowed", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			_, err := table.Set(ctx, "", &types.RelationshipEdge{FromID: from, ToID: to, Type: types.RelParentOf})
			require.NoError(t, err)
		}
		records, err := table.Fetch(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("self-loop allowed", func(t *testing.T) {
		_, err := table.Set(ctx, "", &types.RelationshipEdge{FromID: from, ToID: from, Type: types.RelSpouseOf})
		assert.NoError(t, err)
	})
}

func TestRelationshipsDelete(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)
	table := relationshipsTableFor(t, b)

	id, err := table.Set(ctx, "", &types.RelationshipEdge{
		FromID: uuid.NewString(),
		ToID:   uuid.NewString(),
		Type:   types.RelParentOf,
	})
	require.NoError(t, err)

	require.NoError(t, table.Delete(ctx, id))
	_, err = table.Get(ctx, id)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
