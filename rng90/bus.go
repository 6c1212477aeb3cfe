package rng90

// Bus is the two-wire transport the driver talks through. Implementations
// provide blocking byte-level access to a single I2C device; the driver
// never interleaves transactions and performs no internal locking, so a
// Bus only needs to support one caller at a time.
//
// The periphbus package provides an implementation over periph.io.
// See the examples directory for a simulated device implementation.
type Bus interface {
	// Write transmits p to the device at the 7-bit address addr as a
	// single transaction. It returns the number of bytes written.
	Write(addr uint16, p []byte) (int, error)

	// Read fills p from the device at the 7-bit address addr. When hold
	// is true the transaction keeps the bus claimed (repeated start) so
	// the following Read continues the same device transaction; the
	// driver uses this for its count-byte-then-rest read pattern.
	Read(addr uint16, p []byte, hold bool) (int, error)
}
