package bidi

import (
	"errors"
	"testing"
)

func TestValidateLineBreaksAcceptsStrictlyIncreasing(t *testing.T) {
	if err := validateLineBreaks([]int{2, 5, 9}, 9); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateLineBreaksAcceptsEmpty(t *testing.T) {
	if err := validateLineBreaks(nil, 5); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateLineBreaksRejectsNonIncreasing(t *testing.T) {
	err := validateLineBreaks([]int{4, 4}, 10)
	if !errors.Is(err, ErrInvalidLineBreaks) {
		t.Errorf("got %v, want ErrInvalidLineBreaks", err)
	}
}

func TestValidateLineBreaksRejectsDescending(t *testing.T) {
	err := validateLineBreaks([]int{5, 3}, 10)
	if !errors.Is(err, ErrInvalidLineBreaks) {
		t.Errorf("got %v, want ErrInvalidLineBreaks", err)
	}
}

func TestValidateLineBreaksRejectsOutOfRange(t *testing.T) {
	err := validateLineBreaks([]int{3, 20}, 10)
	if !errors.Is(err, ErrInvalidLineBreaks) {
		t.Errorf("got %v, want ErrInvalidLineBreaks", err)
	}
}

func TestValidateLineBreaksRejectsZero(t *testing.T) {
	err := validateLineBreaks([]int{0}, 10)
	if !errors.Is(err, ErrInvalidLineBreaks) {
		t.Errorf("got %v, want ErrInvalidLineBreaks", err)
	}
}
