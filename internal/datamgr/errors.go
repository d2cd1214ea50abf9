package datamgr

import "errors"

const Namespace = "datamgr"

var (
	// ErrSensorNotMapped is returned by RoomMapping.Room for a sensor ID
	// absent from the mapping. Manager.Run logs and skips the reading
	// rather than treating this as fatal.
	ErrSensorNotMapped = errors.New(Namespace + ": sensor ID not mapped to a room")

	// ErrInvalidConfig is returned when a supplied Option produces an
	// unusable config (e.g. Min >= Max).
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
