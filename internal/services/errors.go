package services

import "errors"

// Sentinel errors returned by the lifecycle services. Handlers match these
// with errors.Is to choose an HTTP status; nothing else crosses the boundary.
var (
	// ErrNotFound also covers rows the caller doesn't own: lookups filter by
	// owner, so an outsider cannot distinguish "not yours" from "does not
	// exist".
	ErrNotFound = errors.New("record not found")

	ErrJobNotOpen           = errors.New("job is no longer open for applications")
	ErrOwnJob               = errors.New("cannot apply to your own job")
	ErrDuplicateApplication = errors.New("you have already applied to this job")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotAccepted          = errors.New("application has not been accepted")
	ErrStaleWrite           = errors.New("record was modified by someone else, reload and retry")

	ErrNoAcceptedApplications = errors.New("job has no accepted applications")
	ErrProvidersNotDone       = errors.New("not every accepted provider has marked the job done")

	ErrNotWorkedWith = errors.New("no finished engagement with this provider for this job")
	ErrReviewExists  = errors.New("review already submitted for this engagement")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	ErrAlreadyBookmarked = errors.New("job already bookmarked")
)
