package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oladimeji-kazeem/budgetpro/internal/domain"
	"github.com/oladimeji-kazeem/budgetpro/internal/events"
	"github.com/oladimeji-kazeem/budgetpro/internal/repository"
	apperrors "github.com/oladimeji-kazeem/budgetpro/pkg/util/errorutil"
)

// RequestService manages the access-request approval workflow.
type RequestService struct {
	users      repository.UserRepository
	requests   repository.AccessRequestRepository
	dispatcher events.Dispatcher
}

// NewRequestService builds the service.
func NewRequestService(users repository.UserRepository, requests repository.AccessRequestRepository, dispatcher events.Dispatcher) *RequestService {
	return &RequestService{users: users, requests: requests, dispatcher: dispatcher}
}

// ListPending returns access requests awaiting review, oldest first.
func (s *RequestService) ListPending(ctx context.Context) ([]repository.PendingRequest, error) {
	return s.requests.ListPending(ctx)
}

// Approve grants the request: the request is stamped and the user account
// flips to active and approved so login starts succeeding.
func (s *RequestService) Approve(ctx context.Context, requestID, adminID string) error {
	request, err := s.pending(ctx, requestID)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, request.UserID)
	if err != nil {
		return err
	}

	now := time.Now()
	request.Status = domain.RequestStatusApproved
	request.ActedBy = &adminID
	request.ActionDate = &now
	if err := s.requests.Update(ctx, request); err != nil {
		return err
	}

	user.Approved = true
	user.Active = true
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventRequestApproved,
		UserID:    user.ID,
		Timestamp: now,
		Payload:   events.RequestApprovedPayload{Email: user.Email, ApprovedBy: adminID},
	})
	return nil
}

// Reject denies the request with a reason. The account stays inactive.
func (s *RequestService) Reject(ctx context.Context, requestID, adminID, reason string) error {
	if reason == "" {
		return apperrors.NewValidationError("rejection reason required", map[string]string{
			"rejection_reason": "required for REJECT",
		})
	}

	request, err := s.pending(ctx, requestID)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, request.UserID)
	if err != nil {
		return err
	}

	now := time.Now()
	request.Status = domain.RequestStatusRejected
	request.ActedBy = &adminID
	request.ActionDate = &now
	request.RejectionReason = reason
	if err := s.requests.Update(ctx, request); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventRequestRejected,
		UserID:    user.ID,
		Timestamp: now,
		Payload:   events.RequestRejectedPayload{Email: user.Email, RejectedBy: adminID, Reason: reason},
	})
	return nil
}

func (s *RequestService) pending(ctx context.Context, requestID string) (*domain.AccessRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("access request")
		}
		return nil, err
	}
	if request.Status != domain.RequestStatusPending {
		return nil, apperrors.NewConflict("request already actioned", nil)
	}
	return request, nil
}

func (s *RequestService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
