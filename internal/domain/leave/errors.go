package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrLeaveOverlap          = errors.New("leave request overlaps with an existing approved or pending leave")
	ErrHalfDayMultipleDays   = errors.New("half-day leave can only be applied for a single day")
	ErrHalfDaySessionMissing = errors.New("half-day session must be specified for half-day leaves")
)
