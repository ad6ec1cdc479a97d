package services

import (
	"errors"
	"invest/models"

	"gorm.io/gorm"
)

// ticket statuses only move forward
var nextTicketStatus = map[string]string{
	models.TicketStatusPending:    models.TicketStatusInProgress,
	models.TicketStatusInProgress: models.TicketStatusResolved,
}

// CreateTicket opens a pending support ticket for the user
func CreateTicket(db *gorm.DB, userID uint, subject, message, priority string) (*models.SupportTicket, error) {
	ticket := models.SupportTicket{
		UserID:   userID,
		Subject:  subject,
		Message:  message,
		Priority: models.TicketPriorityMedium,
		Status:   models.TicketStatusPending,
	}
	if priority != "" {
		ticket.Priority = priority
	}
	if err := db.Create(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// RespondTicket stores the admin response and advances the status. The status
// may stay where it is or move one step forward; skipping or moving backwards
// fails with ErrInvalidStatus.
func RespondTicket(db *gorm.DB, ticketID, adminID uint, response, status string) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	if err := db.First(&ticket, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if status != ticket.Status && nextTicketStatus[ticket.Status] != status {
		return nil, ErrInvalidStatus
	}

	ticket.AdminResponse = response
	ticket.AdminID = &adminID
	ticket.Status = status
	if err := db.Save(&ticket).Error; err != nil {
		return nil, err
	}

	// In-app notification for the client
	db.Create(&models.Notification{
		UserID:  ticket.UserID,
		Title:   "Support ticket updated",
		Message: "Your ticket \"" + ticket.Subject + "\" received a response.",
	})

	return &ticket, nil
}
