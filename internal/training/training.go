// Package training computes distance, speed and calorie statistics for
// running, sports walking and swimming sessions.
package training

import (
	"errors"
	"fmt"
	"math"
)

const (
	MInKm       = 1000
	MinInH      = 60
	LenStep     = 0.65
	SwimLenStep = 1.38
)

var (
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	ErrArity              = errors.New("wrong number of arguments")
	ErrInvalidDuration    = errors.New("duration must be positive")
	ErrInvalidDimension   = errors.New("height must be positive")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// Training is a single session whose statistics are derived on demand.
type Training interface {
	Kind() Kind
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	TrainingInfo() InfoMessage
}

// base holds the inputs shared by every variant. It has no calorie formula,
// so it does not satisfy Training on its own.
type base struct {
	action   int
	duration float64
	weight   float64
	lenStep  float64
}

func newBase(action int, duration, weight, lenStep float64) (base, error) {
	if action < 0 {
		return base{}, fmt.Errorf("%w: action count %d is negative", ErrInvalidArgument, action)
	}
	if !(duration > 0) || math.IsInf(duration, 1) {
		return base{}, fmt.Errorf("%w: got %v", ErrInvalidDuration, duration)
	}
	if !(weight > 0) {
		return base{}, fmt.Errorf("%w: weight %v must be positive", ErrInvalidArgument, weight)
	}
	return base{action: action, duration: duration, weight: weight, lenStep: lenStep}, nil
}

func (b base) Duration() float64 {
	return b.duration
}

// Distance returns kilometres covered by action steps or strokes.
func (b base) Distance() float64 {
	return float64(b.action) * b.lenStep / MInKm
}

func (b base) MeanSpeed() float64 {
	return b.Distance() / b.duration
}

func (b base) durationMin() float64 {
	return b.duration * MinInH
}

// finite rejects inputs whose derived statistics overflow to ±Inf or NaN.
func finite(t Training) error {
	values := []struct {
		name string
		v    float64
	}{
		{"distance", t.Distance()},
		{"mean speed", t.MeanSpeed()},
		{"calories", t.SpentCalories()},
	}
	for _, value := range values {
		if math.IsInf(value.v, 0) || math.IsNaN(value.v) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidArgument, value.name)
		}
	}
	return nil
}

func summarize(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Kind().String(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
