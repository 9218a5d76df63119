package main

import (
	"container/heap"
	"strings"
	"time"
	"unicode/utf8"
)

// Board drives one row of tiles. All calls must come from one goroutine;
// the bubbletea Update loop is the only caller outside tests.
type Board struct {
	tiles    []*Tile
	opts     EngineOptions
	minWidth int
	target   string

	pending wakeQueue
	seq     uint64
	closed  bool
}

func NewBoard(opts EngineOptions, minWidth int) *Board {
	if opts.Drums == nil {
		opts.Drums = NewDrumRegistry()
	}
	return &Board{opts: opts, minWidth: minWidth}
}

func (b *Board) Len() int {
	return len(b.tiles)
}

func (b *Board) Options() EngineOptions {
	return b.opts
}

// SetOptions replaces the engine options. Runs already in flight keep the
// drum they started with.
func (b *Board) SetOptions(opts EngineOptions) {
	if opts.Drums == nil {
		opts.Drums = b.opts.Drums
	}
	b.opts = opts
}

// Resize grows or shrinks the board at the leading edge, so right-aligned
// text keeps its tiles when the width changes.
func (b *Board) Resize(n int) {
	if b.closed || n < 0 {
		return
	}
	for len(b.tiles) < n {
		b.tiles = append([]*Tile{newTile()}, b.tiles...)
	}
	for len(b.tiles) > n {
		b.tiles[0].remove()
		b.tiles = b.tiles[1:]
	}
}

// Update sets a new target string. With skip set every tile commits at once.
func (b *Board) Update(target string, skip bool, now time.Time) {
	if b.closed {
		return
	}
	width := utf8.RuneCountInString(target)
	if width < b.minWidth {
		width = b.minWidth
	}
	target = padLeft(target, width)
	b.target = target
	b.Resize(width)

	for i, r := range []rune(target) {
		t := b.tiles[i]
		// A repeated target leaves the run in flight alone.
		if s, _ := sanitizeRune(r); !skip && t.Spinning() && t.Target() == s {
			continue
		}
		if w, ok := t.RequestTarget(r, &b.opts, skip, now); ok {
			b.schedule(w)
		}
	}
}

// Advance completes every flip due at or before now and returns how many
// flips finished.
func (b *Board) Advance(now time.Time) int {
	if b.closed {
		return 0
	}
	done := 0
	for b.pending.Len() > 0 && !b.pending[0].at.After(now) {
		e := heap.Pop(&b.pending).(*wakeEntry)
		if !e.tile.expects(e.gen) {
			continue
		}
		done++
		if next, ok := e.tile.finishFlip(e.gen, &b.opts, e.at); ok {
			b.schedule(next)
		}
	}
	return done
}

// NextWake returns the earliest pending flip completion. Wakes left behind
// by superseded runs are dropped first.
func (b *Board) NextWake() (time.Time, bool) {
	if b.closed {
		return time.Time{}, false
	}
	b.dropStale()
	if b.pending.Len() == 0 {
		return time.Time{}, false
	}
	return b.pending[0].at, true
}

func (b *Board) dropStale() {
	for b.pending.Len() > 0 && !b.pending[0].tile.expects(b.pending[0].gen) {
		heap.Pop(&b.pending)
	}
}

// Busy reports whether any tile is still converging.
func (b *Board) Busy() bool {
	if b.closed {
		return false
	}
	for _, t := range b.tiles {
		if t.Spinning() {
			return true
		}
	}
	return false
}

// Teardown cancels every run and turns the board inert.
func (b *Board) Teardown() {
	for _, t := range b.tiles {
		t.remove()
	}
	b.pending = nil
	b.closed = true
}

func (b *Board) Closed() bool {
	return b.closed
}

func (b *Board) Faces() []Face {
	faces := make([]Face, len(b.tiles))
	for i, t := range b.tiles {
		faces[i] = t.Face()
	}
	return faces
}

// Text returns the committed characters.
func (b *Board) Text() string {
	var sb strings.Builder
	for _, t := range b.tiles {
		sb.WriteRune(t.Current())
	}
	return sb.String()
}

// Target returns the padded string the board is converging to.
func (b *Board) Target() string {
	return b.target
}

func (b *Board) schedule(w wake) {
	b.seq++
	heap.Push(&b.pending, &wakeEntry{at: w.at, tile: w.tile, gen: w.gen, seq: b.seq})
}

type wakeEntry struct {
	at   time.Time
	tile *Tile
	gen  uint64
	seq  uint64
}

// wakeQueue is a min-heap of wakes ordered by time, then by insertion.
type wakeQueue []*wakeEntry

func (q wakeQueue) Len() int { return len(q) }

func (q wakeQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q wakeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *wakeQueue) Push(x any) {
	*q = append(*q, x.(*wakeEntry))
}

func (q *wakeQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}
