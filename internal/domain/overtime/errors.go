package overtime

import "errors"

var (
	ErrOvertimeNotFound         = errors.New("overtime request not found")
	ErrOvertimeAlreadyProcessed = errors.New("overtime request has already been approved or rejected")
	ErrOvertimeDateExists       = errors.New("overtime already exists for that employee and date")
	ErrOvertimeNotConsumable    = errors.New("overtime day is not credited as pending OT or was already used")
)
