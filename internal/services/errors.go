package services

import "errors"

var (
	// ErrNotFound covers missing threats, alerts and incident detail
	// lookups.
	ErrNotFound = errors.New("not found")

	// ErrMissileUnavailable is the interception conflict: the missile
	// was already used or never existed.
	ErrMissileUnavailable = errors.New("missile unavailable")

	// ErrInventoryFull rejects missile intake past the cap.
	ErrInventoryFull = errors.New("missile inventory full")

	ErrInvalidThreatLevel = errors.New("invalid threat level")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoThreatToAlert is the alert generator's "nothing to do"
	// outcome, not a failure.
	ErrNoThreatToAlert = errors.New("no unintercepted high/critical threat")
)
