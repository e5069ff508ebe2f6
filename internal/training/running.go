package training

const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 20
)

type Running struct {
	base
}

func NewRunning(action int, duration, weight float64) (Running, error) {
	b, err := newBase(action, duration, weight, LenStep)
	if err != nil {
		return Running{}, err
	}
	r := Running{base: b}
	if err := finite(r); err != nil {
		return Running{}, err
	}
	return r, nil
}

func (Running) Kind() Kind {
	return KindRunning
}

// SpentCalories is negative below 20/18 km/h.
func (r Running) SpentCalories() float64 {
	speed := r.MeanSpeed()
	return (runningSpeedMultiplier*speed - runningSpeedShift) * r.weight / MInKm * r.durationMin()
}

func (r Running) TrainingInfo() InfoMessage {
	return summarize(r)
}
