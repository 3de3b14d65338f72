package membership

import "github.com/fitstack/memberd/pkg/apperr"

var (
	ErrMemberNotFound     = apperr.NotFound("member not found")
	ErrPlanNotFound       = apperr.NotFound("plan not found")
	ErrMembershipNotFound = apperr.NotFound("membership not found")

	ErrStartAfterEnd    = apperr.Validation("start date must be before or equal to end date")
	ErrAlreadyExpired   = apperr.Validation("cannot cancel an already expired membership")
	ErrCancelDateInPast = apperr.Validation("cancel date cannot be in the past")
	ErrAlreadyCancelled = apperr.Validation("membership is already cancelled")

	// ErrOverlap is the domain translation of the memberships_no_overlap
	// exclusion constraint.
	ErrOverlap = apperr.Conflict("member already has an overlapping membership for this period")
)
