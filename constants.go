package main

import "time"

// Mode selects where the board text comes from.
type Mode int

const (
	ModeData Mode = iota
	ModeClock
)

// ContentMode controls how a series name and value are combined.
type ContentMode int

const (
	ContentValue ContentMode = iota
	ContentName
	ContentNameValue
	ContentValueName
)

// Aggregation reduces a window of series values to one value.
type Aggregation int

const (
	AggLast Aggregation = iota
	AggLastNotNull
	AggFirst
	AggFirstNotNull
	AggMin
	AggMax
	AggMean
	AggSum
	AggCount
)

type uiMode int

const (
	uiNormal uiMode = iota
	uiEditing
)

const (
	defaultNormalSpeed = 0.49 // seconds per deliberate single flip
	defaultSpinSpeed   = 0.12 // seconds per flip while spinning
	minStepSpeed       = 0.02
	easingMinSteps     = 9 // Full drum spins longer than this are eased
	easingDepth        = 0.8
	maxRunSteps        = 60

	defaultRounding   = 1
	defaultDigitCount = 6
	defaultInterval   = 3 * time.Second
	clockInterval     = time.Second
	frameInterval     = time.Second / 60

	placeholderValue = "---"
	contentJoin      = "   "
)
