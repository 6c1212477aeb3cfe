package protocol

import (
	"errors"
	"fmt"
)

// CRCError indicates that a received frame's trailing checksum does not
// match the checksum computed over its contents. A frame failing
// validation must not be interpreted further.
type CRCError struct {
	// Computed is the checksum calculated over the received bytes
	Computed uint16

	// Received is the checksum the device appended to the frame
	Received uint16
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("response CRC invalid: computed 0x%04X, received 0x%04X",
		e.Computed, e.Received)
}

// IsCRCError returns true if the error is, or wraps, a CRCError.
func IsCRCError(err error) bool {
	var crcErr *CRCError
	return errors.As(err, &crcErr)
}

// ShortResponseError indicates that a response was smaller than the
// minimum required, either because its count field is below the legal
// frame minimum or because fewer bytes than the count field promised
// were available.
type ShortResponseError struct {
	// Count is the number of bytes the response actually provided
	Count int

	// Min is the number of bytes required
	Min int
}

func (e *ShortResponseError) Error() string {
	return fmt.Sprintf("response too short: got %d bytes, need %d", e.Count, e.Min)
}

// IsShortResponseError returns true if the error is, or wraps, a
// ShortResponseError.
func IsShortResponseError(err error) bool {
	var shortErr *ShortResponseError
	return errors.As(err, &shortErr)
}

// StatusError represents an error status code reported by the device in a
// 4-byte status frame.
type StatusError struct {
	// Operation is the command that failed
	Operation string

	// StatusCode is the status byte from the response frame
	StatusCode byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %s (0x%02X)", e.Operation, StatusName(e.StatusCode), e.StatusCode)
}

// IsStatusError returns true if the error is, or wraps, a StatusError.
func IsStatusError(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr)
}

// StatusName returns a human-readable name for a device status code.
func StatusName(code byte) string {
	switch code {
	case StatusSuccess:
		return "success"
	case StatusParseError:
		return "parse error"
	case StatusSelfTestError:
		return "self-test error"
	case StatusExecutionError:
		return "execution error"
	case StatusAfterWake:
		return "after wake"
	case StatusWatchdogExpire:
		return "watchdog about to expire"
	case StatusCRCError:
		return "communication error"
	default:
		return fmt.Sprintf("unknown status code 0x%02X", code)
	}
}
