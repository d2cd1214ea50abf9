// Package datamgr implements consumer D of the shared buffer: it maps each
// incoming reading's sensor ID to a room, maintains a per-room moving
// average of recent values, and logs an anomaly whenever a reading (or its
// room's running average, depending on the AnomalyBasis set with
// WithAnomalyBasis) falls outside
// configured thresholds.
//
// Manager.Run follows the canonical consumer loop shape: acquire the room
// mapping once at startup, loop on Buffer.Remove(sbuf.D) until it reports
// sbuf.ErrTerminated, and return. Unmapped sensor IDs are logged and
// skipped rather than treated as fatal, since a single unknown sensor must
// not stop the rest of the pipeline.
package datamgr
