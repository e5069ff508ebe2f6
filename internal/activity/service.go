package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/briangreenhill/ftracker/internal/training"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Summarize builds the training for one sensor package and renders its summary.
func (a *Service) Summarize(ctx context.Context, code string, data []float64) (Summary, error) {
	t, err := training.Build(code, data)
	if err != nil {
		recordRejected(err)
		a.logger.WarnContext(ctx, "Rejected training package",
			slog.String("workout_type", code),
			slog.Int("values", len(data)),
			slog.Any("error", err))
		return Summary{}, err
	}

	info := t.TrainingInfo()
	recordSummary(info)

	summary := newSummary(uuid.NewString(), info)
	a.logger.DebugContext(ctx, "Summarized training",
		slog.String("id", summary.ID),
		slog.String("training_type", info.TrainingType))

	return summary, nil
}
