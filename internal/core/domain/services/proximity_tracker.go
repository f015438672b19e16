package services

import (
	"sync"

	"freight/internal/core/domain/model/job"
	"freight/internal/core/domain/model/kernel"
)

// ArrivalRadiusMeters is the distance at which a carrier counts as having
// arrived at a waypoint.
const ArrivalRadiusMeters = 500

// Crossing describes a single entry into a waypoint's arrival radius.
// Approach counts the carrier's entries into this radius, starting at one;
// it keeps a re-entry after a genuine exit distinguishable from the first.
type Crossing struct {
	JobID          kernel.UUID
	ShipperID      kernel.UUID
	WaypointKind   job.WaypointKind
	DistanceMeters float64
	Approach       int
}

type waypointKey struct {
	jobID kernel.UUID
	kind  job.WaypointKind
}

type carrierState struct {
	mu         sync.Mutex
	inside     map[waypointKey]bool
	approaches map[waypointKey]int
}

// ProximityTracker is a stateful domain service that detects when carriers
// enter the arrival radius of job waypoints.
//
// Detection is edge triggered with hysteresis: a (job, waypoint) pair fires
// once when the carrier crosses from outside to inside the radius, and cannot
// fire again until a later position puts the carrier back outside. Repeated
// positions inside the radius, however closely they hover around the
// boundary, produce no further crossings.
//
// Positions for different carriers are evaluated concurrently; positions for
// the same carrier are serialized so out-of-order evaluation cannot corrupt
// the inside/outside state.
type ProximityTracker struct {
	radiusMeters float64

	mu       sync.Mutex
	carriers map[kernel.UUID]*carrierState
}

// NewProximityTracker creates a tracker with the standard arrival radius.
func NewProximityTracker() *ProximityTracker {
	return &ProximityTracker{
		radiusMeters: ArrivalRadiusMeters,
		carriers:     make(map[kernel.UUID]*carrierState),
	}
}

// Evaluate checks the carrier's position against the relevant waypoint of
// each given job and returns the crossings produced by this position. Jobs
// whose status has no relevant waypoint are skipped.
func (t *ProximityTracker) Evaluate(
	carrierID kernel.UUID,
	point kernel.GeoPoint,
	jobs []*job.Job,
) ([]Crossing, error) {
	if err := carrierID.Validate(); err != nil {
		return nil, err
	}
	if err := point.Validate(); err != nil {
		return nil, err
	}

	state := t.stateFor(carrierID)

	state.mu.Lock()
	defer state.mu.Unlock()

	var crossings []Crossing
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}

		waypoint, kind, ok := j.RelevantWaypoint()
		if !ok {
			continue
		}

		distance, err := point.DistanceTo(waypoint.Point())
		if err != nil {
			return nil, err
		}

		key := waypointKey{jobID: j.ID(), kind: kind}
		inside := distance <= t.radiusMeters

		if inside && !state.inside[key] {
			state.approaches[key]++
			crossings = append(crossings, Crossing{
				JobID:          j.ID(),
				ShipperID:      j.ShipperID(),
				WaypointKind:   kind,
				DistanceMeters: distance,
				Approach:       state.approaches[key],
			})
		}

		if inside {
			state.inside[key] = true
		} else {
			delete(state.inside, key)
		}
	}

	return crossings, nil
}

// ClearCarrier resets the carrier's inside/outside state. Called when the
// carrier goes offline so the next session starts from a clean outside state.
// Approach counters are kept, so arrivals after the break get fresh numbers.
func (t *ProximityTracker) ClearCarrier(carrierID kernel.UUID) {
	t.mu.Lock()
	state, ok := t.carriers[carrierID]
	t.mu.Unlock()

	if !ok {
		return
	}

	state.mu.Lock()
	state.inside = make(map[waypointKey]bool)
	state.mu.Unlock()
}

// ClearJob drops tracked state for a job across all carriers. Called when the
// job reaches a terminal status.
func (t *ProximityTracker) ClearJob(jobID kernel.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, state := range t.carriers {
		state.mu.Lock()
		for key := range state.inside {
			if key.jobID.IsEqual(jobID) {
				delete(state.inside, key)
			}
		}
		for key := range state.approaches {
			if key.jobID.IsEqual(jobID) {
				delete(state.approaches, key)
			}
		}
		state.mu.Unlock()
	}
}

func (t *ProximityTracker) stateFor(carrierID kernel.UUID) *carrierState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.carriers[carrierID]
	if !ok {
		state = &carrierState{
			inside:     make(map[waypointKey]bool),
			approaches: make(map[waypointKey]int),
		}
		t.carriers[carrierID] = state
	}

	return state
}
