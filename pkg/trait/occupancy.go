package trait

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aretw0/traits/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Occupancy converts loosely typed input (JSON-decoded arrays, integer slices,
// fixed-size arrays) into an occupancy slice.
// Anything that is not an array of numbers fails with domain.ErrInvalidOccupancy.
func Occupancy(input any) ([]float64, error) {
	if occ, ok := input.([]float64); ok {
		if err := ValidateOccupancy(occ); err != nil {
			return nil, err
		}
		return append([]float64(nil), occ...), nil
	}

	if input == nil {
		return nil, fmt.Errorf("%w: got nil", domain.ErrInvalidOccupancy)
	}
	kind := reflect.TypeOf(input).Kind()
	if kind != reflect.Slice && kind != reflect.Array {
		return nil, fmt.Errorf("%w: expected an array, got %T", domain.ErrInvalidOccupancy, input)
	}

	var occ []float64
	if err := mapstructure.Decode(input, &occ); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidOccupancy, err)
	}
	if occ == nil {
		occ = []float64{}
	}
	if err := ValidateOccupancy(occ); err != nil {
		return nil, err
	}
	return occ, nil
}

// ValidateOccupancy rejects negative and non-finite slots.
func ValidateOccupancy(occupancy []float64) error {
	for i, v := range occupancy {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: slot %d has value %v", domain.ErrInvalidOccupancy, i, v)
		}
	}
	return nil
}

// Occupied counts the non-zero slots.
func Occupied(occupancy []float64) int {
	n := 0
	for _, v := range occupancy {
		if v != 0 {
			n++
		}
	}
	return n
}

// fill returns a fresh slice where every occupied slot holds draw() and every
// empty slot holds zero. draw is called once per occupied slot, in slot order.
func fill(occupancy []float64, draw func() float64) []float64 {
	out := make([]float64, len(occupancy))
	for i, v := range occupancy {
		if v != 0 {
			out[i] = draw()
		}
	}
	return out
}

func checkParam(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", domain.ErrInvalidParameter, name, v)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must be non-negative, got %v", domain.ErrInvalidParameter, name, v)
	}
	return nil
}
