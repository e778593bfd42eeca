package questions

import (
	"errors"
	"testing"
	"time"
)

// Both validations run before any store access, so a zero-value service is
// enough to exercise them.

func TestRate_OutOfRangeRejected(t *testing.T) {
	svc := &Service{}
	for _, rating := range []int{-1, 0, 6, 12} {
		_, err := svc.Rate(1, 1, rating)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Rate(%d): expected validation error, got %v", rating, err)
		}
	}
}

func TestRecordAnswer_BlankTextRejected(t *testing.T) {
	svc := &Service{}
	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := svc.RecordAnswer(1, 1, time.Now(), text)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("RecordAnswer(%q): expected validation error, got %v", text, err)
		}
	}
}
