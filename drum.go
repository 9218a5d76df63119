package main

// DrumKind identifies one of the circular alphabets a tile can spin through.
type DrumKind int

const (
	DrumFull DrumKind = iota
	DrumNumeric
	DrumStrictNumeric
	DrumClock
)

const (
	fullDrumChars          = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ.,:%°-/"
	numericDrumChars       = " 0123456789.,:%°-/"
	strictNumericDrumChars = "0123456789."
	clockDrumChars         = "0123456789"
)

// Drum is an immutable circular sequence of runes.
type Drum struct {
	kind  DrumKind
	chars []rune
	index map[rune]int
}

func newDrum(kind DrumKind, chars string) *Drum {
	d := &Drum{
		kind:  kind,
		chars: []rune(chars),
		index: make(map[rune]int),
	}
	for i, r := range d.chars {
		d.index[r] = i
	}
	return d
}

func (d *Drum) Kind() DrumKind {
	return d.kind
}

func (d *Drum) Len() int {
	return len(d.chars)
}

func (d *Drum) Contains(r rune) bool {
	_, ok := d.index[r]
	return ok
}

// IndexOf returns the position of r, or 0 when r is not on the drum.
func (d *Drum) IndexOf(r rune) int {
	if i, ok := d.index[r]; ok {
		return i
	}
	return 0
}

// Next returns the rune that follows r when the drum turns one position.
func (d *Drum) Next(r rune) rune {
	return d.chars[(d.IndexOf(r)+1)%len(d.chars)]
}

// Distance counts forward steps from one rune to another, wrapping around.
func (d *Drum) Distance(from, to rune) int {
	n := len(d.chars)
	return (d.IndexOf(to) - d.IndexOf(from) + n) % n
}

// DrumRegistry holds the drum set. It is built once and shared read-only.
type DrumRegistry struct {
	full          *Drum
	numeric       *Drum
	strictNumeric *Drum
	clock         *Drum
}

func NewDrumRegistry() *DrumRegistry {
	return &DrumRegistry{
		full:          newDrum(DrumFull, fullDrumChars),
		numeric:       newDrum(DrumNumeric, numericDrumChars),
		strictNumeric: newDrum(DrumStrictNumeric, strictNumericDrumChars),
		clock:         newDrum(DrumClock, clockDrumChars),
	}
}

func (reg *DrumRegistry) Get(kind DrumKind) *Drum {
	switch kind {
	case DrumNumeric:
		return reg.numeric
	case DrumStrictNumeric:
		return reg.strictNumeric
	case DrumClock:
		return reg.clock
	default:
		return reg.full
	}
}

// Select picks the drum for a current -> target transition. The second
// result is false when neither rune pair fits any drum and the tile must
// snap instead of spinning.
func (reg *DrumRegistry) Select(current, target rune, mode Mode, forceNumeric bool) (*Drum, bool) {
	var d *Drum
	switch {
	case mode == ModeClock && reg.clock.Contains(current) && reg.clock.Contains(target):
		d = reg.clock
	case forceNumeric:
		d = reg.strictNumeric
	case reg.numeric.Contains(current) && reg.numeric.Contains(target):
		d = reg.numeric
	default:
		d = reg.full
	}

	if !d.Contains(current) || !d.Contains(target) {
		d = reg.full
	}
	if !d.Contains(current) || !d.Contains(target) {
		return d, false
	}
	return d, true
}

// sanitizeRune replaces anything outside the supported glyph set with a
// space. The second result reports whether r was supported.
func sanitizeRune(r rune) (rune, bool) {
	switch {
	case r == ' ':
		return r, true
	case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return r, true
	}
	switch r {
	case '.', ',', ':', '%', '°', '-', '/':
		return r, true
	}
	return ' ', false
}
