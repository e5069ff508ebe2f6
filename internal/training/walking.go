package training

import (
	"fmt"
	"math"
)

const (
	walkingWeightMultiplier = 0.035
	walkingSpeedMultiplier  = 0.029
)

// Walking is a sports walking session.
type Walking struct {
	base
	height float64
}

func NewWalking(action int, duration, weight, height float64) (Walking, error) {
	b, err := newBase(action, duration, weight, LenStep)
	if err != nil {
		return Walking{}, err
	}
	if !(height > 0) {
		return Walking{}, fmt.Errorf("%w: got %v", ErrInvalidDimension, height)
	}
	w := Walking{base: b, height: height}
	if err := finite(w); err != nil {
		return Walking{}, err
	}
	return w, nil
}

func (Walking) Kind() Kind {
	return KindWalking
}

// SpentCalories uses the floored quotient of speed squared over height.
func (w Walking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	term := math.Floor(speed * speed / w.height)
	return (walkingWeightMultiplier*w.weight + term*walkingSpeedMultiplier*w.weight) * w.durationMin()
}

func (w Walking) TrainingInfo() InfoMessage {
	return summarize(w)
}
