package sesshoku

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// InRange runs the geometric test of one interactable against an
// interactor: the interactable is in range when it is strictly closer than
// its maximum distance and strictly inside the ViewHalfAngle cone around the
// interactor's forward direction.
//
// A zero-length forward, or an interactable sitting exactly on the
// interactor, yields a NaN angle and is never in range.
//
// Returns:
//   - angle: deviation from forward in radians, in [0, π] or NaN.
//   - distanceSquared: squared distance between the two positions.
//   - ok: whether the interactable is in range.
func InRange(interactor Transform, target Vec3, maxDistanceSquared float32) (angle, distanceSquared float32, ok bool) {
	distanceSquared = target.DistanceSquared(interactor.Position)
	angle = AngleBetween(interactor.Forward, target.Sub(interactor.Position))
	ok = distanceSquared < maxDistanceSquared && angle < ViewHalfAngle
	return angle, distanceSquared, ok
}

// angleTieEpsilon is the angular difference, in radians, under which two
// targets count as equally centered and distance decides. It absorbs the
// float32 rounding of positions lying on the same ray (about 0.006°).
const angleTieEpsilon = 1e-4

// candidate is the per-tick immutable snapshot of one interactable.
type candidate struct {
	entity             Entity
	position           Vec3
	maxDistanceSquared float32
}

// scanJob binds an interactor to its transform for one pass.
type scanJob struct {
	entity     Entity
	interactor *Interactor
	transform  Transform
}

// TargetingReport summarizes one targeting pass.
type TargetingReport struct {
	Interactors   int // interactors scanned
	Interactables int // interactables taking part after gating
	Gated         int // interactables skipped as disabled or not possible
	Pairs         int // interactor/interactable pairs tested
	Targets       int // sum of target set sizes
	Errors        []error
}

// TargetingSystem recomputes, every tick, the targets and closest target of
// every Interactor from the Transform of the interactor and of every
// Interactable. The scan is brute force, O(interactors × interactables).
type TargetingSystem struct {
	world         *World
	log           logrus.FieldLogger
	workers       int
	interactors   *Filter[Interactor]
	interactables *Filter[Interactable]
	snapshot      []candidate
	jobs          []scanJob
}

// NewTargetingSystem creates the targeting stage for w. workers > 1 splits
// interactors across that many goroutines.
func NewTargetingSystem(w *World, log logrus.FieldLogger, workers int) *TargetingSystem {
	if workers < 1 {
		workers = 1
	}
	return &TargetingSystem{
		world:         w,
		log:           log.WithField("component", "targeting"),
		workers:       workers,
		interactors:   NewFilter[Interactor](w),
		interactables: NewFilter[Interactable](w),
	}
}

// Update runs one targeting pass. Targets are rebuilt from scratch, so an
// interactable that failed this tick's test, or no longer exists, is never
// left in a target set.
func (s *TargetingSystem) Update() TargetingReport {
	var report TargetingReport
	s.collectInteractables(&report)
	s.collectInteractors(&report)

	report.Interactors = len(s.jobs)
	report.Interactables = len(s.snapshot)
	report.Pairs = len(s.jobs) * len(s.snapshot)

	if s.workers <= 1 || len(s.jobs) < 2 {
		for _, j := range s.jobs {
			report.Targets += s.scan(j)
		}
	} else {
		report.Targets = s.scanParallel()
	}

	s.log.WithFields(logrus.Fields{
		"interactors":   report.Interactors,
		"interactables": report.Interactables,
		"gated":         report.Gated,
		"targets":       report.Targets,
		"errors":        len(report.Errors),
	}).Debug("Targeting pass complete.")
	return report
}

// collectInteractables snapshots the interactables for this tick. Host
// predicates run here, on the calling goroutine only.
func (s *TargetingSystem) collectInteractables(report *TargetingReport) {
	s.snapshot = s.snapshot[:0]
	s.interactables.Reset()
	for s.interactables.Next() {
		e := s.interactables.Entity()
		it := s.interactables.Get()
		if !it.Enabled || (it.Possible != nil && !it.Possible.IsPossible(e, s.world)) {
			report.Gated++
			continue
		}
		tf := GetComponent[Transform](s.world, e)
		if tf == nil {
			err := missing(e, "Transform")
			report.Errors = append(report.Errors, err)
			s.log.WithField("interactable", e.String()).WithError(err).Warn("Interactable skipped.")
			continue
		}
		s.snapshot = append(s.snapshot, candidate{
			entity:             e,
			position:           tf.Position,
			maxDistanceSquared: it.maxDistanceSquared,
		})
	}
}

func (s *TargetingSystem) collectInteractors(report *TargetingReport) {
	s.jobs = s.jobs[:0]
	s.interactors.Reset()
	for s.interactors.Next() {
		e := s.interactors.Entity()
		in := s.interactors.Get()
		tf := GetComponent[Transform](s.world, e)
		if tf == nil {
			in.reset()
			err := missing(e, "Transform")
			report.Errors = append(report.Errors, err)
			s.log.WithField("interactor", e.String()).WithError(err).Warn("Interactor targets cleared.")
			continue
		}
		s.jobs = append(s.jobs, scanJob{entity: e, interactor: in, transform: *tf})
	}
}

// scan recomputes the targets of one interactor and returns their count.
// Closest is the smallest angle; angles within angleTieEpsilon tie and go to
// the smaller distance, then to the smaller entity.
func (s *TargetingSystem) scan(j scanJob) int {
	j.interactor.reset()
	var (
		found     bool
		best      Entity
		bestAngle float32
		bestDist  float32
	)
	for _, c := range s.snapshot {
		angle, d2, ok := InRange(j.transform, c.position, c.maxDistanceSquared)
		if !ok {
			continue
		}
		j.interactor.insert(c.entity)
		if !found || closer(angle, d2, c.entity, bestAngle, bestDist, best) {
			found = true
			best, bestAngle, bestDist = c.entity, angle, d2
		}
	}
	if found {
		j.interactor.setClosest(best)
	}
	return j.interactor.Len()
}

// scanParallel splits the jobs into one contiguous chunk per worker. Each
// interactor is written by exactly one goroutine and the snapshot is only
// read.
func (s *TargetingSystem) scanParallel() int {
	n := len(s.jobs)
	workers := min(s.workers, n)
	chunk := (n + workers - 1) / workers
	counts := make([]int, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for _, j := range s.jobs[lo:hi] {
				counts[w] += s.scan(j)
			}
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

// closer reports whether the (angle, d2, e) candidate beats the current best.
func closer(angle, d2 float32, e Entity, bestAngle, bestDist float32, best Entity) bool {
	diff := angle - bestAngle
	if diff < -angleTieEpsilon {
		return true
	}
	if diff > angleTieEpsilon {
		return false
	}
	if d2 != bestDist {
		return d2 < bestDist
	}
	return e.less(best)
}
