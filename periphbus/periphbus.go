// Package periphbus adapts a periph.io I2C bus to the rng90.Bus
// interface.
//
// Example:
//
//	if _, err := host.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	b, err := i2creg.Open("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	dev := rng90.New(periphbus.New(b))
package periphbus

import (
	"periph.io/x/conn/v3/i2c"
)

// Bus wraps a periph.io i2c.Bus as an rng90.Bus.
type Bus struct {
	bus i2c.Bus
}

// New creates a Bus over the given periph.io I2C bus.
// The underlying bus is borrowed: the caller keeps ownership and is
// responsible for closing it.
func New(bus i2c.Bus) *Bus {
	if bus == nil {
		panic("bus cannot be nil")
	}
	return &Bus{bus: bus}
}

// Write transmits p to the device at addr as a single transaction.
func (b *Bus) Write(addr uint16, p []byte) (int, error) {
	if err := b.bus.Tx(addr, p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read fills p from the device at addr.
//
// The Linux I2C interface cannot keep the bus claimed between calls, so
// the hold flag is ignored and each Read is a discrete transaction. The
// RNG90 tolerates this for the count-byte-then-rest pattern because its
// output buffer position is preserved across read transactions.
func (b *Bus) Read(addr uint16, p []byte, hold bool) (int, error) {
	if err := b.bus.Tx(addr, nil, p); err != nil {
		return 0, err
	}
	return len(p), nil
}
