package events

import (
	"time"

	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventRequestApproved EventType = "request_approved"
	EventRequestRejected EventType = "request_rejected"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email         string      `json:"email"`
	RequestedRole domain.Role `json:"requested_role"`
	Department    string      `json:"department"`
}

// RequestApprovedPayload payload.
type RequestApprovedPayload struct {
	Email     string `json:"email"`
	ApprovedBy string `json:"approved_by"`
}

// RequestRejectedPayload payload.
type RequestRejectedPayload struct {
	Email      string `json:"email"`
	RejectedBy string `json:"rejected_by"`
	Reason     string `json:"reason"`
}
