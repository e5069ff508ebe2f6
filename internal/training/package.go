package training

import (
	"fmt"
	"math"
)

// ArityError reports a package whose value count does not match its kind.
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d", ErrArity, e.Code, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// Package is a raw sensor reading: a type code and its positional values.
type Package struct {
	Code string
	Data []float64
}

// Build constructs the training selected by code from positional values:
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, pool length, lap count
func Build(code string, data []float64) (Training, error) {
	kind, err := ParseKind(code)
	if err != nil {
		return nil, err
	}
	if len(data) != kind.Arity() {
		return nil, &ArityError{Code: code, Want: kind.Arity(), Got: len(data)}
	}

	action, err := count("action count", data[0])
	if err != nil {
		return nil, err
	}
	duration, weight := data[1], data[2]

	var t Training
	switch kind {
	case KindRunning:
		t, err = NewRunning(action, duration, weight)
	case KindWalking:
		t, err = NewWalking(action, duration, weight, data[3])
	case KindSwimming:
		t, err = buildSwimming(action, duration, weight, data[3], data[4])
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func buildSwimming(action int, duration, weight, length, laps float64) (Training, error) {
	b, err := newBase(action, duration, weight, SwimLenStep)
	if err != nil {
		return nil, err
	}
	l, err := count("pool length", length)
	if err != nil {
		return nil, err
	}
	n, err := count("lap count", laps)
	if err != nil {
		return nil, err
	}
	return newSwimming(b, l, n)
}

// Read is Build for a Package.
func Read(p Package) (Training, error) {
	return Build(p.Code, p.Data)
}

// maxCount is the largest integer a float64 holds exactly.
const maxCount = 1 << 53

func count(name string, v float64) (int, error) {
	if v < 0 || v != math.Trunc(v) || v > maxCount {
		return 0, fmt.Errorf("%w: %s must be a non-negative whole number, got %v", ErrInvalidArgument, name, v)
	}
	return int(v), nil
}

// Samples returns the reference packages, including one with an unsupported code.
func Samples() []Package {
	return []Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
		{Code: "BOX", Data: []float64{1, 1}},
	}
}
