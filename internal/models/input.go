package models

import (
	"math"
	"strconv"
	"strings"
)

type InputErrorKind int

const (
	EmptyName InputErrorKind = iota + 1
	EmptyMax
	NonNumericMax
	NonPositiveMax
)

// InputError is returned when the user's exercise input is rejected.
// Kind tells the caller which field to report on.
type InputError struct {
	Kind InputErrorKind
}

func (e *InputError) Error() string {
	switch e.Kind {
	case EmptyName:
		return "please enter the exercise name"
	case EmptyMax:
		return "please enter the maximum"
	case NonNumericMax:
		return "please enter a valid number"
	case NonPositiveMax:
		return "the maximum must be greater than 0"
	default:
		return "invalid input"
	}
}

// Field returns the input field the error refers to.
func (e *InputError) Field() string {
	if e.Kind == EmptyName {
		return "name"
	}
	return "max"
}

type ExerciseInput struct {
	Name string
	Max  float64
}

// ParseExerciseInput trims and validates the raw form values.
func ParseExerciseInput(name, max string) (ExerciseInput, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return ExerciseInput{}, &InputError{Kind: EmptyName}
	}
	m, err := ParseMax(max)
	if err != nil {
		return ExerciseInput{}, err
	}

	return ExerciseInput{Name: name, Max: m}, nil
}

// ParseMax validates a maximum on its own. It fails with the same InputError kinds
// ParseExerciseInput uses for the max field.
func ParseMax(max string) (float64, error) {
	max = strings.TrimSpace(max)
	if max == "" {
		return 0, &InputError{Kind: EmptyMax}
	}

	m, err := strconv.ParseFloat(max, 64)
	if err != nil || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, &InputError{Kind: NonNumericMax}
	}
	if m <= 0 {
		return 0, &InputError{Kind: NonPositiveMax}
	}
	return m, nil
}
