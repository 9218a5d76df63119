package main

import (
	"math"
	"time"
)

// EngineOptions are the knobs every tile on a board shares.
type EngineOptions struct {
	Mode         Mode
	ForceNumeric bool
	NormalSpeed  float64 // seconds
	SpinSpeed    float64 // seconds
	Drums        *DrumRegistry
}

// Face is what the renderer draws for one tile.
type Face struct {
	Top      rune // entering character, upper half and back of the flap
	Bottom   rune // leaving character, lower half and front of the flap
	Flipping bool
}

// run is one convergence attempt. A tile owns at most one.
type run struct {
	gen        uint64
	drum       *Drum
	stepsTotal int
	stepsTaken int
	start      rune
	target     rune
	next       rune
}

// wake asks the board to complete a flip of tile at the given time.
type wake struct {
	at   time.Time
	tile *Tile
	gen  uint64
}

// Tile is one character cell.
type Tile struct {
	current  rune
	display  rune
	bottom   rune
	flipping bool
	target   rune

	active *run
	gen    uint64
	dead   bool
}

func newTile() *Tile {
	return &Tile{current: ' ', display: ' ', bottom: ' ', target: ' '}
}

func (t *Tile) Face() Face {
	return Face{Top: t.display, Bottom: t.bottom, Flipping: t.flipping}
}

// Current returns the last committed character.
func (t *Tile) Current() rune {
	return t.current
}

func (t *Tile) Target() rune {
	return t.target
}

func (t *Tile) Spinning() bool {
	return t.active != nil
}

// RequestTarget points the tile at a new character. When a spin is needed
// it takes the first step and returns the wake for its completion.
func (t *Tile) RequestTarget(raw rune, opts *EngineOptions, immediate bool, now time.Time) (wake, bool) {
	if t.dead {
		return wake{}, false
	}
	target, supported := sanitizeRune(raw)
	t.target = target

	if immediate || !supported || target == t.current {
		t.commit(target)
		return wake{}, false
	}

	t.cancel()
	drum, ok := opts.Drums.Select(t.current, target, opts.Mode, opts.ForceNumeric)
	if !ok {
		t.commit(target)
		return wake{}, false
	}

	t.active = &run{
		gen:        t.gen,
		drum:       drum,
		stepsTotal: drum.Distance(t.current, target),
		start:      t.current,
		target:     target,
	}
	return t.step(opts, now), true
}

// step turns the drum one position and starts the flip animation.
func (t *Tile) step(opts *EngineOptions, now time.Time) wake {
	r := t.active
	r.next = r.drum.Next(t.current)

	t.bottom = t.current
	t.display = r.next
	t.flipping = true

	speed := stepSpeed(r.stepsTotal, r.stepsTaken, r.drum.Kind() == DrumFull, opts.NormalSpeed, opts.SpinSpeed)
	return wake{at: now.Add(secondsToDuration(speed)), tile: t, gen: r.gen}
}

// finishFlip completes the flip started by step. Wakes from a superseded
// run or a removed tile are ignored.
func (t *Tile) finishFlip(gen uint64, opts *EngineOptions, now time.Time) (wake, bool) {
	if !t.expects(gen) {
		return wake{}, false
	}
	r := t.active

	t.flipping = false
	t.current = r.next
	t.bottom = r.next
	r.stepsTaken++

	if r.next == r.target || r.stepsTaken >= maxRunSteps {
		t.settle(r.target)
		return wake{}, false
	}
	return t.step(opts, now), true
}

// expects reports whether gen belongs to the run currently in flight.
func (t *Tile) expects(gen uint64) bool {
	return !t.dead && t.active != nil && t.active.gen == gen
}

// cancel invalidates the active run. Pending wakes for it become no-ops.
func (t *Tile) cancel() {
	t.gen++
	t.active = nil
	t.flipping = false
	t.display = t.current
	t.bottom = t.current
}

func (t *Tile) commit(c rune) {
	t.cancel()
	t.settle(c)
}

func (t *Tile) settle(c rune) {
	t.active = nil
	t.current = c
	t.display = c
	t.bottom = c
	t.flipping = false
	t.target = c
}

// remove cancels the tile for good.
func (t *Tile) remove() {
	t.cancel()
	t.dead = true
}

// stepSpeed returns the flip duration in seconds for the step about to be
// taken. Single-step changes flip at the deliberate normal speed; long
// spins on the full drum start and end slowly.
func stepSpeed(stepsTotal, stepsTaken int, fullDrum bool, normalSpeed, spinSpeed float64) float64 {
	if stepsTotal == 1 {
		return normalSpeed
	}
	if fullDrum && stepsTotal > easingMinSteps {
		progress := float64(stepsTaken) / float64(stepsTotal)
		m := 1.0 - easingDepth*math.Sin(math.Pi*progress)
		return math.Max(minStepSpeed, spinSpeed*m)
	}
	return spinSpeed
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
