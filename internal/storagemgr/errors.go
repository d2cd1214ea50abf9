package storagemgr

import "errors"

const Namespace = "storagemgr"

var (
	// ErrInvalidConfig is returned when a supplied Option produces an
	// unusable config.
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")

	// ErrNotOpen is returned by Run if called before Open.
	ErrNotOpen = errors.New(Namespace + ": Manager is not open")
)
