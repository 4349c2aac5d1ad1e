package slotvec

import "github.com/cockroachdb/errors"

var (
	// ErrForeignHandle marks the panic raised when a handle refers to a slot
	// this Vec never issued, typically because it came from a different Vec.
	//
	// This is a programming error. Recovering callers can match it with
	// errors.Is:
	//
	//	defer func() {
	//	    if err, ok := recover().(error); ok && errors.Is(err, slotvec.ErrForeignHandle) {
	//	        // ...
	//	    }
	//	}()
	ErrForeignHandle = errors.New("slotvec: foreign handle")

	// ErrTooManySlots marks the panic raised when a push would need more
	// slot ids than a Handle can address.
	ErrTooManySlots = errors.New("slotvec: too many slots")

	// ErrCorrupt marks errors returned by CheckInvariants.
	ErrCorrupt = errors.New("slotvec: corrupt")
)

// foreignHandle builds the panic value for a handle whose slot is out of range.
func foreignHandle(h Handle, slots int) error {
	return errors.WithAssertionFailure(
		errors.Wrapf(ErrForeignHandle, "handle {slot %d, generation %d} not issued by this vector (%d slots)",
			h.Slot, h.Generation, slots),
	)
}

// tooManySlots builds the panic value for a push that would need a slot id
// beyond the uint32 range.
func tooManySlots(slots int) error {
	return errors.WithAssertionFailure(errors.Wrapf(ErrTooManySlots, "%d slots in use", slots))
}

// corrupt builds the error returned for a violated invariant.
func corrupt(format string, args ...interface{}) error {
	return errors.WithAssertionFailure(errors.Wrapf(ErrCorrupt, format, args...))
}
