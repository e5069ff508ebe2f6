package training

import "fmt"

const messageTemplate = "Training type: %s; Duration: %.3f h; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f."

// InfoMessage is the computed summary of one training.
type InfoMessage struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// Message renders the summary with three decimals per value. Rounding is
// fmt's: the exact binary value is rounded to nearest.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageTemplate, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

func Format(m InfoMessage) string {
	return m.Message()
}
