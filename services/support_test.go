package services

import (
	"invest/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTicket(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 0)

	ticket, err := CreateTicket(db, user.ID, "Deposit missing", "Sent a pix an hour ago", "")
	require.NoError(t, err)
	assert.Equal(t, models.TicketPriorityMedium, ticket.Priority)
	assert.Equal(t, models.TicketStatusPending, ticket.Status)

	urgent, err := CreateTicket(db, user.ID, "Locked out", "Cannot login", models.TicketPriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, models.TicketPriorityHigh, urgent.Priority)
}

func TestRespondTicket(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 0)
	adminID := uint(42)

	ticket, err := CreateTicket(db, user.ID, "Deposit missing", "Sent a pix an hour ago", "")
	require.NoError(t, err)

	updated, err := RespondTicket(db, ticket.ID, adminID, "Looking into it", models.TicketStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusInProgress, updated.Status)
	assert.Equal(t, "Looking into it", updated.AdminResponse)
	require.NotNil(t, updated.AdminID)
	assert.Equal(t, adminID, *updated.AdminID)

	// The client gets an in-app notification
	var note models.Notification
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&note).Error)
	assert.Contains(t, note.Message, "Deposit missing")

	// Staying at the same status is fine
	_, err = RespondTicket(db, ticket.ID, adminID, "Still checking", models.TicketStatusInProgress)
	assert.NoError(t, err)

	updated, err = RespondTicket(db, ticket.ID, adminID, "Credited now", models.TicketStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusResolved, updated.Status)
}

func TestRespondTicket_InvalidTransitions(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, 0)

	ticket, err := CreateTicket(db, user.ID, "Subject", "Message", "")
	require.NoError(t, err)

	// pending -> resolved skips a step
	_, err = RespondTicket(db, ticket.ID, 1, "done", models.TicketStatusResolved)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = RespondTicket(db, ticket.ID, 1, "ok", models.TicketStatusInProgress)
	require.NoError(t, err)

	// Backwards is not allowed
	_, err = RespondTicket(db, ticket.ID, 1, "reopen", models.TicketStatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = RespondTicket(db, 999, 1, "hello", models.TicketStatusInProgress)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
