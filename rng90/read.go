package rng90

import (
	"time"

	"github.com/darranl/go-rng90/protocol"
)

const (
	// configZone is the Param1 zone selector for the configuration zone
	configZone = 0x00

	// ConfigBlockSize is the number of bytes per configuration zone block
	ConfigBlockSize = 16

	// readWait is the response wait for the Read command
	readWait = 2 * time.Millisecond
)

// ReadConfig reads one 16-byte block from the device configuration zone.
//
// Returns *protocol.StatusError if the device rejects the block address
// with an error frame.
func (d *Device) ReadConfig(block byte) ([]byte, error) {
	// Param2 addresses the zone in 4-byte words, four words per block.
	payload, err := d.execute("read config", protocol.OpRead, configZone, uint16(block)*4, nil,
		protocol.ReadResponseSize, readWait)
	if err != nil {
		return nil, err
	}

	if len(payload) == 1 {
		return nil, &protocol.StatusError{Operation: "read config", StatusCode: payload[0]}
	}
	if len(payload) < ConfigBlockSize {
		return nil, &protocol.ShortResponseError{
			Count: len(payload) + 1 + protocol.ChecksumSize,
			Min:   protocol.ReadResponseSize,
		}
	}

	out := make([]byte, ConfigBlockSize)
	copy(out, payload)
	return out, nil
}
