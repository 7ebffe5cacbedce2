package mail_test

import (
	"testing"

	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/mail"
	"salesreport/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	from, err := kernel.NewEmail("reports@example.com")
	require.NoError(t, err)
	to, err := kernel.NewEmail("anna@example.com")
	require.NoError(t, err)

	t.Run("creates a complete message", func(t *testing.T) {
		msg, err := mail.NewMessage(from, "Report Bot", to, "Anna Kowalska",
			"Sales report", "total: 20", "<p>total: 20</p>")

		require.NoError(t, err)
		require.NoError(t, msg.Validate())
		assert.Equal(t, "reports@example.com", msg.From().String())
		assert.Equal(t, "anna@example.com", msg.To().String())
		assert.Equal(t, "Report Bot", msg.FromName())
		assert.Equal(t, "Anna Kowalska", msg.ToName())
		assert.Equal(t, "Sales report", msg.Subject())
		assert.Equal(t, "total: 20", msg.TextBody())
		assert.Equal(t, "<p>total: 20</p>", msg.HTMLBody())
	})

	t.Run("rejects unconstructed from address", func(t *testing.T) {
		var zero kernel.Email

		_, err := mail.NewMessage(zero, "", to, "", "Sales report", "", "")

		require.Error(t, err)
	})

	t.Run("rejects empty subject", func(t *testing.T) {
		_, err := mail.NewMessage(from, "", to, "", "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMessage_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var msg mail.Message

		err := msg.Validate()

		require.Error(t, err)
		assert.Equal(t, mail.ErrMessageIsNotConstructed, err)
	})
}
