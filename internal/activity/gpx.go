package activity

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/briangreenhill/ftracker/internal/training"
)

var ErrUnsupportedTrack = errors.New("gpx tracks only describe running or walking")

// Track holds the body measurements a GPX file does not carry.
type Track struct {
	Kind   training.Kind
	Weight float64
	Height float64
}

// PackageFromGPX turns a recorded track into a sensor package. Steps are
// estimated from the 2D track length and duration from the point timestamps.
func PackageFromGPX(gpxBytes []byte, track Track) (training.Package, error) {
	if track.Kind != training.KindRunning && track.Kind != training.KindWalking {
		return training.Package{}, fmt.Errorf("%w: %s", ErrUnsupportedTrack, track.Kind)
	}

	g, err := gpx.ParseBytes(gpxBytes)
	if err != nil {
		return training.Package{}, fmt.Errorf("error parsing gpx: %w", err)
	}

	meters := g.Length2D()
	steps := math.Round(meters / training.LenStep)
	hours := g.Duration() / 3600

	data := []float64{steps, hours, track.Weight}
	if track.Kind == training.KindWalking {
		data = append(data, track.Height)
	}

	return training.Package{Code: track.Kind.Code(), Data: data}, nil
}

func readGPXFile(gpxFile string) ([]byte, error) {
	info, err := os.Stat(gpxFile)
	if err != nil {
		return nil, fmt.Errorf("error reading gpx file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("gpx file %s is a directory", gpxFile)
	}
	return os.ReadFile(gpxFile)
}
