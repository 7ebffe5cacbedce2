package mail_test

import (
	"testing"

	"salesreport/internal/core/domain/model/mail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		require.NoError(t, mail.StatusAccepted.Validate())
		require.NoError(t, mail.StatusRejected.Validate())
		require.NoError(t, mail.StatusTransportFault.Validate())
	})

	t.Run("invalid statuses", func(t *testing.T) {
		require.Error(t, mail.StatusUnknown.Validate())
		require.Error(t, mail.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Accepted", mail.StatusAccepted.String())
	assert.Equal(t, "Rejected", mail.StatusRejected.String())
	assert.Equal(t, "TransportFault", mail.StatusTransportFault.String())
	assert.Equal(t, "Unknown", mail.Status(42).String())
}

func TestStatus_IsAccepted(t *testing.T) {
	assert.True(t, mail.StatusAccepted.IsAccepted())
	assert.False(t, mail.StatusRejected.IsAccepted())
	assert.False(t, mail.StatusTransportFault.IsAccepted())
	assert.False(t, mail.StatusUnknown.IsAccepted())
}
