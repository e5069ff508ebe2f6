package training

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		code string
		data []float64
		want Kind
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}, KindSwimming},
		{"RUN", []float64{15000, 1, 75}, KindRunning},
		{"WLK", []float64{9000, 1, 75, 180}, KindWalking},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tr, err := Build(tt.code, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Kind())
			assert.Equal(t, tt.data[1], tr.Duration())
		})
	}
}

func TestBuildUnknownType(t *testing.T) {
	tr, err := Build("BOX", []float64{1, 1})
	require.Error(t, err)
	assert.Nil(t, tr)
	assert.True(t, errors.Is(err, ErrUnknownWorkoutType))
	assert.Contains(t, err.Error(), "BOX")
}

func TestBuildArity(t *testing.T) {
	tests := []struct {
		code string
		data []float64
		want int
	}{
		{"RUN", []float64{1, 1}, 3},
		{"RUN", []float64{1, 1, 70, 5}, 3},
		{"WLK", []float64{9000, 1, 75}, 4},
		{"SWM", []float64{720, 1, 80, 25}, 5},
		{"SWM", nil, 5},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tr, err := Build(tt.code, tt.data)
			require.Error(t, err)
			assert.Nil(t, tr)
			assert.True(t, errors.Is(err, ErrArity))

			var arity *ArityError
			require.True(t, errors.As(err, &arity))
			assert.Equal(t, tt.code, arity.Code)
			assert.Equal(t, tt.want, arity.Want)
			assert.Equal(t, len(tt.data), arity.Got)
		})
	}
}

func TestBuildInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		code string
		data []float64
		want error
	}{
		{"zero duration", "RUN", []float64{15000, 0, 75}, ErrInvalidDuration},
		{"zero height", "WLK", []float64{9000, 1, 75, 0}, ErrInvalidDimension},
		{"fractional action", "RUN", []float64{15000.5, 1, 75}, ErrInvalidArgument},
		{"negative action", "WLK", []float64{-1, 1, 75, 180}, ErrInvalidArgument},
		{"fractional pool", "SWM", []float64{720, 1, 80, 25.5, 40}, ErrInvalidArgument},
		{"negative laps", "SWM", []float64{720, 1, 80, 25, -1}, ErrInvalidArgument},
		{"swim zero duration", "SWM", []float64{720, 0, 80, 25, 40}, ErrInvalidDuration},
		{"swim zero duration before bad laps", "SWM", []float64{720, 0, 80, 25, -1}, ErrInvalidDuration},
		{"action beyond exact integers", "RUN", []float64{1 << 54, 1, 75}, ErrInvalidArgument},
		{"infinite action", "RUN", []float64{math.Inf(1), 1, 75}, ErrInvalidArgument},
		{"subnormal duration", "RUN", []float64{15000, 1e-320, 75}, ErrInvalidArgument},
		{"huge weight", "WLK", []float64{9000, 1, 1e308, 180}, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.code, tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestBuildIsRepeatable(t *testing.T) {
	for _, p := range Samples()[:3] {
		first, err := Read(p)
		require.NoError(t, err)
		second, err := Read(p)
		require.NoError(t, err)

		assert.Equal(t, first.TrainingInfo(), second.TrainingInfo())
		assert.Equal(t, first.TrainingInfo(), first.TrainingInfo())
	}
}

func TestSamples(t *testing.T) {
	samples := Samples()
	require.Len(t, samples, 4)

	_, err := Read(samples[3])
	assert.True(t, errors.Is(err, ErrUnknownWorkoutType))

	samples[0].Data[0] = 0
	assert.Equal(t, 720.0, Samples()[0].Data[0])
}

func TestBuildMessagesStayFinite(t *testing.T) {
	tr, err := Build("RUN", []float64{1 << 53, 1000, 75})
	require.NoError(t, err)

	assert.Regexp(t, `^Training type: Running; Duration: 1000\.000 h; Distance: \d+\.\d{3} km; Avg speed: \d+\.\d{3} km/h; Calories burned: \d+\.\d{3}\.$`,
		tr.TrainingInfo().Message())
}
