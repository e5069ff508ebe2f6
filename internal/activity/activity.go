package activity

import "github.com/briangreenhill/ftracker/internal/training"

// Summary is one processed sensor package.
type Summary struct {
	ID           string  `json:"id"`
	Message      string  `json:"message"`
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

func newSummary(id string, info training.InfoMessage) Summary {
	return Summary{
		ID:           id,
		Message:      info.Message(),
		TrainingType: info.TrainingType,
		Duration:     info.Duration,
		Distance:     info.Distance,
		Speed:        info.Speed,
		Calories:     info.Calories,
	}
}
