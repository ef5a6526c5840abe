package dto

import "time"

// AccessRequestResponse is one pending registration as shown to admins.
type AccessRequestResponse struct {
	ID            string    `json:"id"`
	UserEmail     string    `json:"user_email"`
	UserFullName  string    `json:"user_fullname"`
	RequestedRole string    `json:"requested_role"`
	RequestedAt   time.Time `json:"requested_at"`
	Status        string    `json:"status"`
}

// RequestActionRequest is the admin's approve/reject decision.
type RequestActionRequest struct {
	Action          string `json:"action"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}
