// Package protocol implements the RNG90 I2C command protocol.
//
// This package provides the frame checksum, command frame builder and
// response frame parser for the Microchip RNG90 random number generator.
//
// # Protocol Overview
//
// The RNG90 exchanges count-prefixed, checksum-suffixed frames:
//
//	Command:  [Count][Opcode][Param1][Param2-low][Param2-high][Data...][CRC-low][CRC-high]
//	Response: [Count][Data...][CRC-low][CRC-high]
//
// Count includes itself and the two checksum bytes. Before transmission
// the caller prepends a single word-address selector byte choosing the
// device register:
//
//	0x00  reset/wake
//	0x01  sleep
//	0x03  normal command
//
// The selector is not covered by the checksum.
//
// # Building Commands
//
// Use BuildCommand for a fresh buffer, or AppendCommand to reuse one:
//
//	frame, err := protocol.BuildCommand(protocol.OpInfo, 0x00, 0x0000, nil)
//
// # Parsing Responses
//
// The first byte read from the device is always the total frame length.
// After reading the remaining Count-1 bytes, validate and extract the
// payload with ParseResponse:
//
//	payload, err := protocol.ParseResponse(frame)
//	if err != nil {
//	    // *CRCError or *ShortResponseError
//	}
//
// A validated response is either a 4-byte status/error frame, whose single
// payload byte is a status code (see StatusName), or a command-specific
// data frame.
//
// # Checksum
//
// The checksum is a CRC-16 with polynomial 0x8005, initial value zero and
// per-byte input bit reversal, transmitted low byte first. See Checksum.
package protocol
