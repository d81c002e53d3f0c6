package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pantry"
	main "github.com/fwojciec/pantry/cmd/pantry"
	"github.com/fwojciec/pantry/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncDecCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("inc adds one", func(t *testing.T) {
		t.Parallel()

		var gotDelta int
		items := &mock.ItemService{
			AdjustQuantityFn: func(_ context.Context, id int64, delta int) (*pantry.Item, error) {
				gotDelta = delta
				return &pantry.Item{ID: id, Name: "Eggs", Quantity: 7}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Items: items}

		err := (&main.IncCmd{ID: 3}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, gotDelta)
		assert.Equal(t, "Eggs  x7  [3]\n", stdout.String())
	})

	t.Run("dec reports removal at zero", func(t *testing.T) {
		t.Parallel()

		var gotDelta int
		items := &mock.ItemService{
			AdjustQuantityFn: func(_ context.Context, _ int64, delta int) (*pantry.Item, error) {
				gotDelta = delta
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Items: items}

		err := (&main.DecCmd{ID: 3}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, -1, gotDelta)
		assert.Contains(t, stdout.String(), "used up and removed")
	})

	t.Run("returns not found for unknown item", func(t *testing.T) {
		t.Parallel()

		items := &mock.ItemService{
			AdjustQuantityFn: func(_ context.Context, id int64, _ int) (*pantry.Item, error) {
				return nil, pantry.Errorf(pantry.ENOTFOUND, "item %d not found", id)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Items: items}

		err := (&main.DecCmd{ID: 99}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, pantry.ENOTFOUND, pantry.ErrorCode(err))
		assert.Equal(t, "error: item 99 not found\n", stderr.String())
	})
}

func TestRemoveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes the item", func(t *testing.T) {
		t.Parallel()

		var deleted int64
		items := &mock.ItemService{
			FindItemByIDFn: func(_ context.Context, id int64) (*pantry.Item, error) {
				return &pantry.Item{ID: id, Name: "Bread"}, nil
			},
			DeleteItemFn: func(_ context.Context, id int64) error {
				deleted = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Items: items}

		err := (&main.RemoveCmd{ID: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, int64(5), deleted)
		assert.Equal(t, "Removed Bread [5]\n", stdout.String())
	})

	t.Run("does not delete unknown item", func(t *testing.T) {
		t.Parallel()

		items := &mock.ItemService{
			FindItemByIDFn: func(_ context.Context, id int64) (*pantry.Item, error) {
				return nil, pantry.Errorf(pantry.ENOTFOUND, "item %d not found", id)
			},
			DeleteItemFn: func(context.Context, int64) error {
				t.Fatal("DeleteItem should not be called")
				return nil
			},
		}

		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Items: items}

		err := (&main.RemoveCmd{ID: 5}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, pantry.ENOTFOUND, pantry.ErrorCode(err))
	})
}
