package training

import "fmt"

const (
	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2
)

type Swimming struct {
	base
	lengthPool int
	countPool  int
}

func NewSwimming(action int, duration, weight float64, lengthPool, countPool int) (Swimming, error) {
	b, err := newBase(action, duration, weight, SwimLenStep)
	if err != nil {
		return Swimming{}, err
	}
	return newSwimming(b, lengthPool, countPool)
}

func newSwimming(b base, lengthPool, countPool int) (Swimming, error) {
	if lengthPool < 0 || countPool < 0 {
		return Swimming{}, fmt.Errorf("%w: pool length %d and lap count %d must not be negative",
			ErrInvalidArgument, lengthPool, countPool)
	}
	s := Swimming{base: b, lengthPool: lengthPool, countPool: countPool}
	if err := finite(s); err != nil {
		return Swimming{}, err
	}
	return s, nil
}

func (Swimming) Kind() Kind {
	return KindSwimming
}

// MeanSpeed is measured from the laps swum, not from strokes.
func (s Swimming) MeanSpeed() float64 {
	return float64(s.lengthPool) * float64(s.countPool) / MInKm / s.duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier * s.weight
}

func (s Swimming) TrainingInfo() InfoMessage {
	return summarize(s)
}
