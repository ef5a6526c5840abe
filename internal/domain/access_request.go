package domain

import "time"

// RequestStatus tracks the approval workflow for a registration.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// AccessRequest records a new registration awaiting admin review.
// One pending request exists per user.
type AccessRequest struct {
	ID              string
	UserID          string
	Status          RequestStatus
	RequestedRole   Role
	RequestedAt     time.Time
	ActedBy         *string
	ActionDate      *time.Time
	RejectionReason string
}
