//go:build unit

package errs_test

import (
	"context"
	"testing"

	"hotel-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestReasonOf(t *testing.T) {
	notFoundHotel := errs.Mark(errs.New("hotel not found"), errs.ErrNotFound)

	tests := []struct {
		name string
		err  error
		want errs.Reason
	}{
		{name: "nil", err: nil, want: errs.ReasonNone},
		{name: "sentinel", err: errs.ErrNameBlank, want: errs.ReasonNameBlank},
		{name: "wrapped once", err: errs.Wrap(errs.ErrRoomUnavailable, "room 101S"), want: errs.ReasonRoomUnavailable},
		{name: "wrapped twice", err: errs.Wrap(errs.Wrapf(errs.ErrDateRangeInvalid, "day %d", 0), "create reservation"), want: errs.ReasonDateRangeInvalid},
		{name: "marked not found", err: notFoundHotel, want: errs.ReasonNotFound},
		{name: "wrapped marked not found", err: errs.Wrap(notFoundHotel, "rename hotel"), want: errs.ReasonNotFound},
		{name: "foreign error", err: context.Canceled, want: errs.ReasonUnknown},
		{name: "new error with sentinel text", err: errs.New("hotel name is blank"), want: errs.ReasonUnknown},
		{name: "wrapped error with sentinel text", err: errs.Wrap(errs.New("room limit exceeded"), "add rooms"), want: errs.ReasonUnknown},
		{name: "marked with sentinel", err: errs.Mark(errs.New("too many rooms"), errs.ErrRoomLimitExceeded), want: errs.ReasonRoomLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.ReasonOf(tt.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.Wrap(errs.ErrNotFound, "lookup"), 3)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "lookup")
}
