package training

import "fmt"

type Kind int

const (
	KindRunning Kind = iota + 1
	KindWalking
	KindSwimming
)

var kinds = []Kind{KindSwimming, KindRunning, KindWalking}

// Kinds lists every supported workout kind.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Code returns the sensor package type code.
func (k Kind) Code() string {
	switch k {
	case KindRunning:
		return "RUN"
	case KindWalking:
		return "WLK"
	case KindSwimming:
		return "SWM"
	}
	return ""
}

// String returns the label shown in summaries.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arity is the number of positional values a package of this kind carries.
func (k Kind) Arity() int {
	switch k {
	case KindRunning:
		return 3
	case KindWalking:
		return 4
	case KindSwimming:
		return 5
	}
	return 0
}

func ParseKind(code string) (Kind, error) {
	for _, k := range kinds {
		if k.Code() == code {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
}
