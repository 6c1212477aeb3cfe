package rng90

import (
	"time"

	"github.com/darranl/go-rng90/protocol"
)

// execute runs one complete command transaction: precondition checks,
// wake if needed, framed write, fixed wait, count-byte-then-rest read and
// checksum validation. It returns the validated response payload, which
// aliases the Device's receive buffer and is only valid until the next
// transaction.
//
// No retries happen here; the only automatic retry in the driver is the
// single wake-write retry embedded in the wake sequence.
func (d *Device) execute(op string, opcode, param1 byte, param2 uint16, data []byte, respCap int, wait time.Duration) ([]byte, error) {
	if !d.initialized {
		return nil, ErrNotInitialized
	}

	if err := d.ensureAwake(op); err != nil {
		return nil, err
	}

	return d.transact(op, opcode, param1, param2, data, respCap, wait)
}

// transact performs the write-then-timed-read cycle without precondition
// checks, so Init can fetch device identity before the Device is marked
// initialised.
func (d *Device) transact(op string, opcode, param1 byte, param2 uint16, data []byte, respCap int, wait time.Duration) ([]byte, error) {
	d.txBuf[0] = protocol.WordAddressCommand
	frame, err := protocol.AppendCommand(d.txBuf[:1], opcode, param1, param2, data)
	if err != nil {
		return nil, err
	}

	if _, err := d.bus.Write(d.config.Address, frame); err != nil {
		return nil, &CommError{Op: op, Err: err}
	}
	d.trace(op, DirWrite, frame, true)

	// The wait is a fixed per-command budget set above the documented
	// maximum execution time; the device is not polled for readiness.
	d.config.Delay(wait)

	if respCap > len(d.rxBuf) {
		respCap = len(d.rxBuf)
	}
	if _, err := d.bus.Read(d.config.Address, d.rxBuf[:1], true); err != nil {
		return nil, &CommError{Op: op, Err: err}
	}

	count := int(d.rxBuf[0])
	end := count
	if end > respCap {
		end = respCap
	}
	if end > 1 {
		if _, err := d.bus.Read(d.config.Address, d.rxBuf[1:end], false); err != nil {
			return nil, &CommError{Op: op, Err: err}
		}
	}

	resp := d.rxBuf[:end]
	payload, perr := protocol.ParseResponse(resp)
	d.trace(op, DirRead, resp, perr == nil)
	if perr != nil {
		return nil, perr
	}

	return payload, nil
}
