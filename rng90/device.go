package rng90

import (
	"time"

	"github.com/darranl/go-rng90/protocol"
)

const (
	// wakeDelay covers the datasheet's maximum wake latency of 1.8 ms
	// (1.0-1.8 ms depending on the undocumented clock divider).
	wakeDelay = 2 * time.Millisecond

	// infoWait is the response wait for the Info command
	// (typical 0.28 ms, maximum 0.40 ms).
	infoWait = time.Millisecond

	// wakeBufSize is the capacity of the wake response buffer
	wakeBufSize = 8
)

// Device drives one RNG90 chip over a borrowed bus handle.
//
// A Device is a single-owner resource: it performs no internal locking,
// so concurrent use from multiple goroutines requires external mutual
// exclusion. Every call is synchronous and runs to completion on the
// calling goroutine.
type Device struct {
	bus    Bus
	config Config

	initialized  bool
	sleeping     bool
	testComplete bool

	identity protocol.DeviceInfo

	// Fixed transaction buffers keep the command path allocation-free.
	txBuf [1 + protocol.CommandOverhead + protocol.RandomFillerSize]byte
	rxBuf [protocol.MaxResponseSize]byte
}

// New creates a Device driving the RNG90 behind bus.
// The bus is borrowed, not owned: the caller remains responsible for
// opening and closing it.
//
// Example:
//
//	b, _ := i2creg.Open("")
//	dev := rng90.New(periphbus.New(b),
//	    rng90.WithLogger(myLogger),
//	)
func New(bus Bus, opts ...Option) *Device {
	if bus == nil {
		panic("bus cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Device{config: cfg}
	d.SetBus(bus)
	return d
}

// SetBus replaces the bus handle and resets the device state to its
// defaults: uninitialized, assumed sleeping, identity cleared. Call Init
// afterwards before issuing commands.
func (d *Device) SetBus(bus Bus) {
	if bus == nil {
		panic("bus cannot be nil")
	}
	d.bus = bus
	d.initialized = false
	d.sleeping = true // assume sleeping until initialised
	d.testComplete = false
	d.identity = protocol.DeviceInfo{}
}

// Initialized reports whether Init has completed successfully.
func (d *Device) Initialized() bool {
	return d.initialized
}

// Sleeping reports whether the device is believed to be asleep.
func (d *Device) Sleeping() bool {
	return d.sleeping
}

// Identity returns the device identity loaded during initialisation.
// Zero until Init succeeds; see WithIdentityRefresh for when it is
// re-fetched.
func (d *Device) Identity() protocol.DeviceInfo {
	return d.identity
}

// RFU returns the reserved identity byte.
func (d *Device) RFU() byte { return d.identity.RFU }

// DeviceID returns the device type identity byte.
func (d *Device) DeviceID() byte { return d.identity.DeviceID }

// SiliconID returns the silicon variant identity byte.
func (d *Device) SiliconID() byte { return d.identity.SiliconID }

// SiliconRev returns the silicon revision identity byte.
func (d *Device) SiliconRev() byte { return d.identity.SiliconRev }

// Init wakes the device, validates the implicit wake response and loads
// the device identity. It is idempotent: once a Device is initialised,
// further calls issue no bus transactions.
//
// The device may have been sleeping, or everything may have powered up
// together, so the wake write is retried once after the maximum wake
// latency before giving up.
//
// On failure the Device stays uninitialised and the error reports which
// step failed: *CommError for bus failures, *protocol.CRCError for a
// corrupt wake or Info response.
func (d *Device) Init() error {
	if d.initialized {
		return nil
	}

	if err := d.wake("init"); err != nil {
		return err
	}

	if err := d.loadInfo("init"); err != nil {
		return err
	}

	d.initialized = true
	d.logInfo("device initialised",
		"device_id", d.identity.DeviceID,
		"silicon_id", d.identity.SiliconID,
		"silicon_rev", d.identity.SiliconRev,
	)
	return nil
}

// Sleep puts the device into low-power sleep. A no-op unless the device
// is initialised and awake. Sleeping discards the device's volatile
// state, including its self-test status, so the next command after a
// wake pays the self-test latency again.
func (d *Device) Sleep() error {
	if !d.initialized || d.sleeping {
		return nil
	}

	cmd := [1]byte{protocol.WordAddressSleep}
	if _, err := d.bus.Write(d.config.Address, cmd[:]); err != nil {
		return &CommError{Op: "sleep", Err: err}
	}
	d.trace("sleep", DirWrite, cmd[:], true)

	d.sleeping = true
	d.testComplete = false
	d.logDebug("device sleeping")
	return nil
}

// Wake explicitly wakes a sleeping device. A no-op if already awake.
// Returns ErrNotInitialized if Init has not completed.
func (d *Device) Wake() error {
	if !d.initialized {
		return ErrNotInitialized
	}
	return d.ensureAwake("wake")
}

// ensureAwake wakes the device if it is sleeping. Callers must have
// checked initialisation first; Init uses wake directly.
func (d *Device) ensureAwake(op string) error {
	if !d.sleeping {
		return nil
	}

	if err := d.wake(op); err != nil {
		return err
	}

	if d.config.IdentityRefresh == IdentityOnWake {
		return d.loadInfo(op)
	}
	return nil
}

// wake writes the reset/wake selector and validates the implicit wake
// response. The sleeping flag flips only once the response passes
// checksum validation.
func (d *Device) wake(op string) error {
	cmd := [1]byte{protocol.WordAddressReset}
	_, err := d.bus.Write(d.config.Address, cmd[:])
	if err != nil {
		// Device may be sleepy: wait out the maximum wake latency and
		// retry the write exactly once.
		d.config.Delay(wakeDelay)
		_, err = d.bus.Write(d.config.Address, cmd[:])
	}
	if err != nil {
		return &CommError{Op: op, Err: err}
	}
	d.trace(op, DirWrite, cmd[:], true)

	var buf [wakeBufSize]byte
	if _, err := d.bus.Read(d.config.Address, buf[:1], true); err != nil {
		return &CommError{Op: op, Err: err}
	}

	count := int(buf[0])
	further := count
	if further > len(buf)-1 {
		further = len(buf) - 1
	}
	if further > 0 {
		if _, err := d.bus.Read(d.config.Address, buf[1:1+further], false); err != nil {
			return &CommError{Op: op, Err: err}
		}
	}

	end := count
	if end > len(buf) {
		end = len(buf)
	}
	frame := buf[:end]

	_, perr := protocol.ParseResponse(frame)
	d.trace(op, DirRead, frame, perr == nil)
	if perr != nil {
		return perr
	}

	d.sleeping = false
	d.testComplete = false
	d.logDebug("device awake", "status", frame[1])
	return nil
}

// loadInfo fetches device identity with the Info command. Internal so it
// can run during Init, before the Device is marked initialised.
func (d *Device) loadInfo(op string) error {
	payload, err := d.transact(op, protocol.OpInfo, 0x00, 0x0000, nil,
		protocol.InfoResponseSize, infoWait)
	if err != nil {
		return err
	}

	info, err := protocol.ParseInfoResponse(payload)
	if err != nil {
		return err
	}

	d.identity = info
	d.logDebug("device identity",
		"rfu", info.RFU,
		"device_id", info.DeviceID,
		"silicon_id", info.SiliconID,
		"silicon_rev", info.SiliconRev,
	)
	return nil
}

func (d *Device) trace(op string, dir Direction, frame []byte, valid bool) {
	if d.config.Trace != nil {
		d.config.Trace(Trace{Op: op, Dir: dir, Frame: frame, Valid: valid})
	}
}

func (d *Device) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (d *Device) logInfo(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, keysAndValues...)
	}
}
