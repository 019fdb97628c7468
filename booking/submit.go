package booking

import (
	"context"

	"cinebook-cli/model"
	"cinebook-cli/service"
)

// CommitKind tags the outcome of a reservation commit so callers branch
// explicitly instead of matching on error strings.
type CommitKind int

const (
	// CommitSuccess: the booking was created; the caller confirms and
	// clears its selection.
	CommitSuccess CommitKind = iota
	// CommitValidationFailure: rejected locally before any network call.
	CommitValidationFailure
	// CommitConflict: the server rejected the commit because a seat was
	// taken by a concurrent user. Expected and recoverable; the caller
	// keeps the selection so the user can adjust and retry.
	CommitConflict
	// CommitNotFound: the show no longer resolves.
	CommitNotFound
	// CommitTimeout: the request deadline expired before the server
	// answered.
	CommitTimeout
	// CommitNetworkFailure: any other transport or server failure.
	CommitNetworkFailure
)

// CommitResult is the tagged outcome of Commit. Booking is populated only
// for CommitSuccess; Message carries the user-facing reason otherwise.
type CommitResult struct {
	Kind    CommitKind
	Booking model.Booking
	Message string
}

// Submitter turns a selection into a booking with exactly one commit call.
type Submitter struct {
	api *service.Client
}

func NewSubmitter(api *service.Client) *Submitter {
	return &Submitter{api: api}
}

// Commit issues the single /booking/create request for a snapshot of the
// selection and classifies the outcome. An empty seat list never reaches the
// network. Commit never touches a Selection: callers snapshot the seats and
// total before calling, so the request can run on another goroutine, and
// apply BeginCommit/Confirm/Reject themselves around the call.
func (s *Submitter) Commit(ctx context.Context, showID string, seats []string, totalPrice float64) CommitResult {
	if len(seats) == 0 {
		return CommitResult{
			Kind:    CommitValidationFailure,
			Message: "Please select at least one seat.",
		}
	}

	booked, err := s.api.CreateBooking(ctx, service.CreateBookingRequest{
		ShowId:        showID,
		SelectedSeats: seats,
		TotalPrice:    totalPrice,
	})
	if err != nil {
		return CommitResult{Kind: classifyCommitError(err), Message: service.ErrorMessage(err)}
	}

	return CommitResult{Kind: CommitSuccess, Booking: booked}
}

func classifyCommitError(err error) CommitKind {
	switch {
	case service.IsConflict(err):
		return CommitConflict
	case service.IsNotFound(err):
		return CommitNotFound
	case service.IsTimeout(err):
		return CommitTimeout
	default:
		return CommitNetworkFailure
	}
}
