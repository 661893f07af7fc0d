package models

import "errors"

// Sentinel errors for the patch lifecycle. Collaborators wrap the first three
// with %w so the facade can classify them.
var (
	ErrMalformedNotice       = errors.New("malformed notice")
	ErrPatchApplication      = errors.New("patch cannot be applied")
	ErrUnknownCriterion      = errors.New("unknown GPP criterion")
	ErrNoManualNoticeLoaded  = errors.New("no notice loaded for manual testing")
	ErrManualTestingDisabled = errors.New("manual testing is disabled")
)
