package workforce

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("Employee not found")
	ErrRequestNotFound         = errors.New("Leave request not found")
	ErrRequestAlreadyProcessed = errors.New("Leave request already processed")
	ErrAlreadyPunchedIn        = errors.New("Already punched in today")
	ErrNotPunchedIn            = errors.New("No open punch-in for today")
)
