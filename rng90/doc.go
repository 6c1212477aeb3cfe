// Package rng90 provides a high-level driver for the Microchip RNG90
// certified random number generator on an I2C bus.
//
// # Overview
//
// The driver manages the complete device lifecycle:
//   - Waking and initialising the device, with wake-response validation
//   - Sleep and wake power management
//   - Running the on-chip DRBG and SHA-256 self-tests
//   - Generating random byte streams of arbitrary length
//
// # Basic Usage
//
//	// User provides the bus transport (see the periphbus package)
//	b, _ := i2creg.Open("")
//	defer b.Close()
//
//	dev := rng90.New(periphbus.New(b))
//	if err := dev.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	buf := make([]byte, 64)
//	if err := dev.Random(buf); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration Options
//
// Customise behaviour with functional options:
//
//	dev := rng90.New(bus,
//	    rng90.WithLogger(myLogger),
//	    rng90.WithTrace(traceFunc),
//	    rng90.WithIdentityRefresh(rng90.IdentityOnWake),
//	)
//
// # Diagnostics
//
// A TraceCallback receives a structured record for every frame exchanged
// with the device, and a Logger integrates with any logging framework.
// Both are pure side channels and never alter driver behaviour.
//
// # Error Handling
//
// Every operation returns a typed error:
//   - ErrNotInitialized: a command was attempted before Init
//   - *CommError: the bus write or read failed
//   - *protocol.CRCError: a response failed checksum validation
//   - *protocol.ShortResponseError: a response was shorter than required
//   - *protocol.StatusError: the device reported an error status frame
//
// After a failure the Device keeps its last known-good initialised and
// sleeping flags, so callers can inspect them to decide whether to retry
// Init. The only automatic retry in the driver is the single wake-write
// retry during the wake sequence.
//
// # Concurrency
//
// A Device is a single-owner resource. Every call is synchronous and
// blocking on the calling goroutine; the driver performs no internal
// locking and issues no concurrent bus operations. Callers sharing a
// Device across goroutines must supply their own mutual exclusion.
//
// # Hardware Independence
//
// This package does NOT implement hardware communication. Users provide
// a Bus implementation for their platform; the periphbus package adapts
// periph.io buses and the examples directory includes a simulated device
// for development without hardware.
package rng90
