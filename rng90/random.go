package rng90

import (
	"time"

	"github.com/darranl/go-rng90/protocol"
)

const (
	// randomWaitFirst is the response wait for the first Random command
	// after a wake, while the automatic self-tests run (typical 57 ms,
	// maximum 72 ms)
	randomWaitFirst = 72 * time.Millisecond

	// randomWait is the response wait once the self-tests have completed
	// (typical 20.2 ms, maximum 25.3 ms)
	randomWait = 25 * time.Millisecond
)

// Random fills p with random bytes from the device.
//
// The device produces exactly 32 bytes per transaction, so the request is
// chunked into as many transactions as needed and any surplus from the
// final transaction is discarded. The device is re-woken before each
// chunk if something put it to sleep mid-stream.
//
// On any failure the whole call aborts and the contents of p are
// undefined, never partially valid. Returns ErrNotInitialized before
// Init, *CommError or *protocol.CRCError for transport failures and
// *protocol.StatusError if the device reports an error frame.
func (d *Device) Random(p []byte) error {
	if !d.initialized {
		return ErrNotInitialized
	}

	// The Random command requires a 20-byte input field whose content
	// the device ignores.
	var filler [protocol.RandomFillerSize]byte

	for offset := 0; offset < len(p); {
		if err := d.ensureAwake("random"); err != nil {
			return err
		}

		wait := randomWait
		if !d.testComplete {
			wait = randomWaitFirst
		}

		payload, err := d.execute("random", protocol.OpRandom, 0x00, 0x0000, filler[:],
			protocol.RandomResponseSize, wait)
		if err != nil {
			return err
		}

		if len(payload) == 1 {
			return &protocol.StatusError{Operation: "random", StatusCode: payload[0]}
		}
		if len(payload) < protocol.RandomPayloadSize {
			return &protocol.ShortResponseError{
				Count: len(payload) + 1 + protocol.ChecksumSize,
				Min:   protocol.RandomResponseSize,
			}
		}

		d.testComplete = true
		offset += copy(p[offset:], payload[:protocol.RandomPayloadSize])
	}

	d.logDebug("random bytes generated", "count", len(p))
	return nil
}

// Read implements io.Reader over Random, filling p completely on success.
// This lets a Device feed anything that consumes an entropy stream.
func (d *Device) Read(p []byte) (int, error) {
	if err := d.Random(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
