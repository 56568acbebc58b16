package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Reason is the machine-readable cause of a rejected engine operation.
type Reason string

const (
	ReasonNone                  Reason = ""
	ReasonNameBlank             Reason = "NAME_BLANK"
	ReasonNameInvalidChar       Reason = "NAME_INVALID_CHAR"
	ReasonNameLeadingDigit      Reason = "NAME_LEADING_DIGIT"
	ReasonNameDuplicate         Reason = "NAME_DUPLICATE"
	ReasonDateRangeInvalid      Reason = "DATE_RANGE_INVALID"
	ReasonGuestNameInvalid      Reason = "GUEST_NAME_INVALID"
	ReasonRoomUnavailable       Reason = "ROOM_UNAVAILABLE"
	ReasonHasActiveReservations Reason = "HAS_ACTIVE_RESERVATIONS"
	ReasonRoomLimitExceeded     Reason = "ROOM_LIMIT_EXCEEDED"
	ReasonRoomCountInvalid      Reason = "ROOM_COUNT_INVALID"
	ReasonRoomTypeInvalid       Reason = "ROOM_TYPE_INVALID"
	ReasonBasePriceTooLow       Reason = "BASE_PRICE_TOO_LOW"
	ReasonNotFound              Reason = "NOT_FOUND"
	ReasonUnknown               Reason = "UNKNOWN"
)

func (r Reason) String() string {
	return string(r)
}

// ReasonOf returns ReasonNone for a nil error and ReasonUnknown for errors
// that carry no engine sentinel.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	for _, r := range reasons {
		if Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonUnknown
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark makes err match reference under Is while keeping its own message.
// A nil err yields reference itself.
func Mark(err error, reference error) error {
	if err == nil {
		return reference
	}
	return cr.Mark(err, reference)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its stack and keeps the first maxLines
// lines for structured logs.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
