package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidAmount         = errors.New("amount must be a positive number")
	ErrInvalidRate           = errors.New("rate must be between 0 and 100")
	ErrDuplicatePAN          = errors.New("deductee with this PAN already exists")
	ErrDuplicateVoucher      = errors.New("voucher number already exists")
	ErrInvalidAssessmentYear = errors.New("assessment year must match YYYY-YY")
	ErrSnapshotUploadFailed  = errors.New("report snapshot upload failed")
)

// FieldErrors maps field name to a human-readable validation message.
// An empty map means the record is valid. Validation failures are data for
// the form to render, never errors.
type FieldErrors map[string]string

// Valid reports whether no field failed.
func (e FieldErrors) Valid() bool { return len(e) == 0 }
