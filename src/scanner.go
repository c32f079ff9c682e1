package tpmscore

// searchClasses is how many distinct per-level duration clusters
// searchCoherentSignal tracks before giving up on a run; three is enough
// to cover preamble/sync/data timing variance in every protocol here.
const searchClasses = 3

const maxPulseDurationUs = 4000

// searchCoherentSignal measures how many consecutive pulses starting at
// idx fall into a small, stable set of per-level duration classes: real
// transmissions keep their pulse widths within a tight band, noise
// doesn't. It also estimates the run's short-pulse (symbol) duration as
// the average of the two levels' shortest stable class, which is what the
// line-code conversion step uses as its unit duration.
func searchCoherentSignal(buf *RawSamples, idx int64, minDurationUs uint32) (runLen int, shortPulseDurUs uint32) {
	type class struct {
		dur   [2]uint32
		count [2]uint32
	}
	var classes [searchClasses]class

	for j := int64(0); ; j++ {
		level, dur := buf.Get(idx + j)
		if dur < minDurationUs || dur > maxPulseDurationUs {
			break
		}

		lvl := 0
		if level {
			lvl = 1
		}

		matched := false
		for k := range classes {
			if classes[k].count[lvl] == 0 {
				classes[k].dur[lvl] = dur
				classes[k].count[lvl] = 1
				matched = true
				break
			}
			classAvg := classes[k].dur[lvl]
			count := classes[k].count[lvl]
			if durationDelta(dur, classAvg) < classAvg/5 {
				classes[k].dur[lvl] = (classAvg*count + dur) / (count + 1)
				classes[k].count[lvl]++
				matched = true
				break
			}
		}
		if !matched {
			break
		}
		runLen++
	}

	var shortDur [2]uint32
	for j := 0; j < searchClasses; j++ {
		for lvl := 0; lvl < 2; lvl++ {
			if classes[j].dur[lvl] == 0 || classes[j].count[lvl] < 3 {
				continue
			}
			if shortDur[lvl] == 0 || shortDur[lvl] > classes[j].dur[lvl] {
				shortDur[lvl] = classes[j].dur[lvl]
			}
		}
	}
	if shortDur[0] == 0 {
		shortDur[0] = shortDur[1]
	}
	if shortDur[1] == 0 {
		shortDur[1] = shortDur[0]
	}
	shortPulseDurUs = (shortDur[0] + shortDur[1]) / 2
	return runLen, shortPulseDurUs
}

// minCoherentLen is the longest run searchCoherentSignal may report that
// ScanForSignal still ignores: only runs longer than this get a decode
// attempt.
const minCoherentLen = 18

// Scanner walks a snapshot of a RawSamples buffer looking for coherent
// pulse runs and hands each one to the protocol registry. It keeps the
// best candidate found across a single ScanForSignal call: a successful
// decode always wins over a longer but undecoded run, and among two
// undecoded runs the longer one wins.
type Scanner struct {
	Registry []*Decoder
	Stats    Stats

	BestLen  int
	Decoded  bool
	MsgInfo  *MsgInfo

	// DetectedSamples is a copy of the buffer centered on the best
	// candidate's start, kept around so a caller can re-render or re-decode
	// the exact pulses that produced MsgInfo.
	DetectedSamples *RawSamples

	working *RawSamples
}

// NewScanner returns a Scanner ready to run against buffers of the given
// capacity, dispatching to registry on every coherent run it finds.
func NewScanner(capacity uint32, registry []*Decoder) *Scanner {
	return &Scanner{
		Registry:        registry,
		MsgInfo:         &MsgInfo{},
		DetectedSamples: NewRawSamples(capacity),
		working:         NewRawSamples(capacity),
	}
}

// Reset clears the scanner's best-candidate state, ready for a fresh
// signal search.
func (sc *Scanner) Reset() {
	sc.BestLen = 0
	sc.Decoded = false
	initMsgInfo(sc.MsgInfo)
	sc.DetectedSamples.Reset()
}

// ScanForSignal snapshots source and walks it end to end, running
// searchCoherentSignal at every unconsumed position and attempting a
// decode on every run longer than minCoherentLen. minDurationUs is the
// scanner's noise floor: pulses shorter than this are never considered
// part of a coherent run.
func (sc *Scanner) ScanForSignal(source *RawSamples, minDurationUs uint32) {
	sc.working.CopyFrom(source)
	sc.Stats.ScanCount.Add(1)

	total := int64(sc.working.Cap())
	var i int64
	for i < total-1 {
		runLen, shortPulseDurUs := searchCoherentSignal(sc.working, i, minDurationUs)

		if runLen > minCoherentLen {
			sc.Stats.CoherentCount.Add(1)

			info := &MsgInfo{}
			initMsgInfo(info)
			info.ShortPulseDurUs = shortPulseDurUs

			savedHead := sc.working.HeadIndex()
			sc.working.Center(i)
			sc.working.ShortPulseDurUs = shortPulseDurUs

			sc.Stats.DecodeTryCount.Add(1)
			decoded := DecodeSignal(sc.working, runLen, info, sc.Registry)
			if decoded {
				sc.Stats.DecodeOkCount.Add(1)
			}

			sc.working.headIndex.Store(uint64(savedHead)) //nolint:gosec // savedHead came from HeadIndex(), always non-negative.

			if !sc.Decoded && (runLen > sc.BestLen || decoded) {
				sc.MsgInfo = info
				sc.BestLen = runLen
				sc.Decoded = decoded
				sc.DetectedSamples.CopyFrom(sc.working)
				sc.DetectedSamples.Center(i)
			}
		}

		if runLen > 0 {
			i += int64(runLen)
		} else {
			i++
		}
	}
}
