package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rankery/rankery/pkg/domain"
)

// RunFlowStoreContract verifies that a FlowStore implementation adheres to
// the interface contract. Adapters call this from their own tests.
func RunFlowStoreContract(t *testing.T, store FlowStore) {
	ctx := context.Background()
	userID := "contract-user-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		fc := domain.NewFlowContext(domain.FlowRateItem, domain.StepAwaitScoreChoice)
		fc.List = "Movies"
		fc.Item = "Dune"

		require.NoError(t, store.Save(ctx, userID, fc))

		loaded, err := store.Load(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, domain.FlowRateItem, loaded.Kind)
		assert.Equal(t, domain.StepAwaitScoreChoice, loaded.Step)
		assert.Equal(t, "Movies", loaded.List)
		assert.Equal(t, "Dune", loaded.Item)
	})

	t.Run("Save replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, userID, domain.NewFlowContext(domain.FlowCreateList, domain.StepAwaitListName)))

		loaded, err := store.Load(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, domain.FlowCreateList, loaded.Kind)
		assert.Empty(t, loaded.List, "replaced context must not carry old selections")
	})

	t.Run("Load missing", func(t *testing.T) {
		_, err := store.Load(ctx, "absent-"+userID)
		assert.ErrorIs(t, err, domain.ErrNoActiveFlow)
	})

	t.Run("Loaded copy is isolated", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, userID, domain.NewFlowContext(domain.FlowAddItem, domain.StepAwaitListChoice)))

		first, err := store.Load(ctx, userID)
		require.NoError(t, err)
		first.List = "mutated"

		second, err := store.Load(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, second.List, "mutating a loaded context must not leak into the store")
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, userID, domain.NewFlowContext(domain.FlowViewList, domain.StepAwaitListChoice)))
		require.NoError(t, store.Clear(ctx, userID))

		_, err := store.Load(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrNoActiveFlow)

		// Clearing again is not an error.
		assert.NoError(t, store.Clear(ctx, userID))
	})
}
