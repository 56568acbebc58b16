package errs

// Engine sentinel errors, one per Reason
var (
	// Hotel name errors
	ErrNameBlank        = newSentinel("hotel name is blank")
	ErrNameInvalidChar  = newSentinel("hotel name contains invalid characters")
	ErrNameLeadingDigit = newSentinel("hotel name must start with a letter")
	ErrNameDuplicate    = newSentinel("hotel name already exists")

	// Reservation errors
	ErrDateRangeInvalid = newSentinel("invalid check-in/check-out range")
	ErrGuestNameInvalid = newSentinel("guest name must contain only letters and spaces")
	ErrRoomUnavailable  = newSentinel("room is not available for the requested dates")

	// Mutation-safety errors
	ErrHasActiveReservations = newSentinel("hotel has active reservations")
	ErrRoomLimitExceeded     = newSentinel("room limit exceeded")
	ErrRoomCountInvalid      = newSentinel("room count must be positive")
	ErrRoomTypeInvalid       = newSentinel("invalid room type")
	ErrBasePriceTooLow       = newSentinel("base price is below the minimum")

	// Lookup errors
	ErrNotFound = newSentinel("not found")
)

// sentinel gives every engine error its own type so that an unrelated error
// carrying the same message never matches it.
type sentinel struct{ msg string }

func (e *sentinel) Error() string { return e.msg }

func newSentinel(msg string) error { return &sentinel{msg: msg} }

var reasons = []struct {
	err    error
	reason Reason
}{
	{ErrNameBlank, ReasonNameBlank},
	{ErrNameInvalidChar, ReasonNameInvalidChar},
	{ErrNameLeadingDigit, ReasonNameLeadingDigit},
	{ErrNameDuplicate, ReasonNameDuplicate},
	{ErrDateRangeInvalid, ReasonDateRangeInvalid},
	{ErrGuestNameInvalid, ReasonGuestNameInvalid},
	{ErrRoomUnavailable, ReasonRoomUnavailable},
	{ErrHasActiveReservations, ReasonHasActiveReservations},
	{ErrRoomLimitExceeded, ReasonRoomLimitExceeded},
	{ErrRoomCountInvalid, ReasonRoomCountInvalid},
	{ErrRoomTypeInvalid, ReasonRoomTypeInvalid},
	{ErrBasePriceTooLow, ReasonBasePriceTooLow},
	{ErrNotFound, ReasonNotFound},
}
