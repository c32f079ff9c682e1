package tpmscore

import "sync/atomic"

// Stats holds lock-free running counters for one scanner, suitable for a
// caller to sample periodically (e.g. into Prometheus gauges) without
// coordinating with the scan loop.
type Stats struct {
	ScanCount      atomic.Uint64 // ScanForSignal invocations.
	CoherentCount  atomic.Uint64 // runs that searchCoherentSignal judged coherent.
	DecodeTryCount atomic.Uint64 // coherent runs handed to DecodeSignal.
	DecodeOkCount  atomic.Uint64 // DecodeSignal calls that matched a registered decoder.
}

// Snapshot returns the current counter values as plain integers.
func (s *Stats) Snapshot() (scan, coherent, decodeTry, decodeOk uint64) {
	return s.ScanCount.Load(), s.CoherentCount.Load(), s.DecodeTryCount.Load(), s.DecodeOkCount.Load()
}
