package qrcode

import "fmt"

// An InvalidArgumentError reports a caller-supplied value that is out of
// range or otherwise malformed: non-encodable characters for a mode,
// negative counts, an out-of-range mask or version, an ECI value outside
// [0, 10^6), or a BitBuffer value that does not fit its declared width.
type InvalidArgumentError struct {
	msg string
}

func (e *InvalidArgumentError) Error() string { return "qrcode: " + e.msg }

// A DataTooLongError reports that no version in the caller's requested
// range can hold the encoded bit stream. It is the one error a caller is
// expected to be able to handle, by relaxing the error correction level,
// raising the maximum version, or shortening the payload.
type DataTooLongError struct {
	Bits, Capacity int // bits required vs. bits available at the max version
}

func (e *DataTooLongError) Error() string {
	return fmt.Sprintf("qrcode: data length %d bits exceeds capacity %d bits "+
		"of the highest allowed version", e.Bits, e.Capacity)
}

// A CapacityExceededError reports that a BitBuffer was asked to grow past
// its maximum length. Reaching this through the public API with valid
// inputs indicates a bug in this package, not in the caller.
type CapacityExceededError struct{}

func (e *CapacityExceededError) Error() string {
	return "qrcode: BitBuffer length would exceed 2^31-1 bits"
}
