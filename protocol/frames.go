package protocol

import (
	"encoding/binary"
	"fmt"
)

// AppendCommand appends a complete command frame to dst and returns the
// extended slice. The frame layout is:
//
//	[Count][Opcode][Param1][Param2-low][Param2-high][Data...][CRC-low][CRC-high]
//
// Count covers every byte of the frame including itself and the checksum.
// The caller prepends the word-address selector before transmission; the
// selector is not covered by the checksum.
//
// Appending to a caller-owned buffer keeps the transaction path free of
// allocations, which matters on the embedded targets this driver is
// written for.
func AppendCommand(dst []byte, opcode, param1 byte, param2 uint16, data []byte) ([]byte, error) {
	count := CommandOverhead + len(data)
	if count > 0xFF {
		return dst, fmt.Errorf("command data too long: %d bytes", len(data))
	}

	start := len(dst)
	dst = append(dst, byte(count), opcode, param1)
	dst = binary.LittleEndian.AppendUint16(dst, param2)
	dst = append(dst, data...)

	crc := Checksum(dst[start:])
	dst = binary.LittleEndian.AppendUint16(dst, crc)

	return dst, nil
}

// BuildCommand constructs a command frame in a fresh buffer.
// See AppendCommand for the frame layout.
func BuildCommand(opcode, param1 byte, param2 uint16, data []byte) ([]byte, error) {
	return AppendCommand(make([]byte, 0, CommandOverhead+len(data)), opcode, param1, param2, data)
}

// ParseResponse validates a response frame and extracts its payload.
//
// frame[0] must be the Count byte read from the device and len(frame) must
// equal Count; the payload is everything between Count and the trailing
// checksum. Returns *ShortResponseError if the frame cannot hold a payload
// and a checksum, or if fewer than Count bytes were read, and *CRCError if
// the trailing checksum does not match.
//
// The payload slice aliases frame; it is only valid while frame is.
func ParseResponse(frame []byte) ([]byte, error) {
	if len(frame) < MinFrameSize {
		return nil, &ShortResponseError{Count: len(frame), Min: MinFrameSize}
	}

	count := int(frame[0])
	if count < MinFrameSize {
		return nil, &ShortResponseError{Count: count, Min: MinFrameSize}
	}
	if count > len(frame) {
		// The read was truncated by the caller's buffer.
		return nil, &ShortResponseError{Count: len(frame), Min: count}
	}

	payloadEnd := count - ChecksumSize
	received := binary.LittleEndian.Uint16(frame[payloadEnd:count])
	computed := Checksum(frame[:payloadEnd])

	if computed != received {
		return nil, &CRCError{Computed: computed, Received: received}
	}

	return frame[1:payloadEnd], nil
}

// IsStatusFrame reports whether a validated response frame is a 4-byte
// status/error frame rather than command-specific data.
func IsStatusFrame(frame []byte) bool {
	return len(frame) > 0 && frame[0] == StatusFrameSize
}
