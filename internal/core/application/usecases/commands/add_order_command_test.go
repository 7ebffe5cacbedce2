package commands_test

import (
	"testing"
	"time"

	"salesreport/internal/core/application/usecases/commands"
	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/order"
	"salesreport/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderCommand(t *testing.T) {
	orderedAt := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should create command with valid data", func(t *testing.T) {
		id := kernel.NewUUID()
		item, _ := order.NewLineItem(decimal.NewFromInt(25), 2)

		cmd, err := commands.NewAddOrderCommand(id, orderedAt, []order.LineItem{item})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, orderedAt, cmd.OrderedAt())
		require.Len(t, cmd.Items(), 1)
	})

	t.Run("should allow empty items", func(t *testing.T) {
		cmd, err := commands.NewAddOrderCommand(kernel.NewUUID(), orderedAt, nil)

		require.NoError(t, err)
		assert.Empty(t, cmd.Items())
	})

	t.Run("should fail on invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewAddOrderCommand(invalidID, orderedAt, nil)

		require.Error(t, err)
	})

	t.Run("should fail on zero ordered-at", func(t *testing.T) {
		_, err := commands.NewAddOrderCommand(kernel.NewUUID(), time.Time{}, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail on unconstructed line item", func(t *testing.T) {
		var invalidItem order.LineItem

		_, err := commands.NewAddOrderCommand(kernel.NewUUID(), orderedAt, []order.LineItem{invalidItem})

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.AddOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddOrderCommandIsNotConstructed)
	})
}
