package commands_test

import (
	"testing"
	"time"

	"salesreport/internal/core/application/usecases/commands"
	"salesreport/internal/core/domain/model/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStatus(t *testing.T) {
	t.Run("should validate legal outcomes", func(t *testing.T) {
		require.NoError(t, commands.RunStatusNoOp.Validate())
		require.NoError(t, commands.RunStatusCompleted.Validate())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		require.Error(t, commands.RunStatusUnknown.Validate())
		require.Error(t, commands.RunStatus(42).Validate())
	})

	t.Run("should render status names", func(t *testing.T) {
		assert.Equal(t, "noop", commands.RunStatusNoOp.String())
		assert.Equal(t, "completed", commands.RunStatusCompleted.String())
		assert.Equal(t, "unknown", commands.RunStatus(42).String())
	})
}

func TestRunOutcome(t *testing.T) {
	t.Run("noop outcome carries no events", func(t *testing.T) {
		outcome := commands.NewNoOpOutcome()

		require.NoError(t, outcome.Validate())
		assert.Equal(t, commands.RunStatusNoOp, outcome.Status())
		assert.Empty(t, outcome.Events())
	})

	t.Run("completed outcome preserves event order", func(t *testing.T) {
		events := []report.DispatchEvent{
			{RecipientName: "Alice Smith", RecipientAddress: "alice@example.com", SentAt: time.Now().UTC()},
			{RecipientName: "Bob Jones", RecipientAddress: "bob@example.com", SentAt: time.Now().UTC()},
		}

		outcome := commands.NewCompletedOutcome(events)

		require.NoError(t, outcome.Validate())
		assert.Equal(t, commands.RunStatusCompleted, outcome.Status())
		assert.Equal(t, events, outcome.Events())
	})

	t.Run("completed outcome with empty events is valid", func(t *testing.T) {
		outcome := commands.NewCompletedOutcome(nil)

		require.NoError(t, outcome.Validate())
		assert.Empty(t, outcome.Events())
	})

	t.Run("events are copied on the way in and out", func(t *testing.T) {
		events := []report.DispatchEvent{{RecipientName: "Alice Smith"}}
		outcome := commands.NewCompletedOutcome(events)

		events[0].RecipientName = "mutated"
		got := outcome.Events()
		assert.Equal(t, "Alice Smith", got[0].RecipientName)

		got[0].RecipientName = "mutated again"
		assert.Equal(t, "Alice Smith", outcome.Events()[0].RecipientName)
	})

	t.Run("should fail validation for zero value outcome", func(t *testing.T) {
		var outcome commands.RunOutcome

		require.ErrorIs(t, outcome.Validate(), commands.ErrRunOutcomeIsNotConstructed)
	})
}
