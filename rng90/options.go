package rng90

import (
	"time"

	"github.com/darranl/go-rng90/protocol"
)

// IdentityRefresh selects when the driver re-fetches device identity.
//
// The device forgets all volatile state when it sleeps, but its identity
// is fixed silicon data, so re-reading it is a correctness/latency
// trade-off rather than a requirement.
type IdentityRefresh int

const (
	// IdentityOnInit fetches identity once, during Init. This is the
	// default: identity is fixed per device, so the cached values stay
	// valid across sleep/wake cycles.
	IdentityOnInit IdentityRefresh = iota

	// IdentityOnWake re-fetches identity after every sleep-to-wake
	// transition, at the cost of one extra Info transaction per wake.
	IdentityOnWake
)

// Config holds the driver configuration.
type Config struct {
	// Address is the 7-bit I2C address of the device
	Address uint16

	// Logger is used for logging operations (optional)
	Logger Logger

	// Trace receives a structured record per exchanged frame (optional)
	Trace TraceCallback

	// Delay blocks for the given duration between a command write and
	// its response read. Defaults to time.Sleep; tests override it.
	Delay func(time.Duration)

	// IdentityRefresh selects when device identity is re-fetched
	IdentityRefresh IdentityRefresh
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Address:         protocol.DeviceAddress,
		Delay:           time.Sleep,
		IdentityRefresh: IdentityOnInit,
	}
}

// Option is a functional option for configuring a Device.
type Option func(*Config)

// WithAddress overrides the device I2C address.
// The RNG90 ships on protocol.DeviceAddress (0x40).
func WithAddress(addr uint16) Option {
	return func(c *Config) {
		c.Address = addr
	}
}

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	dev := rng90.New(bus, rng90.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithTrace sets a callback receiving one record per exchanged frame.
// Tracing is a diagnostic side channel and never alters driver behaviour.
func WithTrace(trace TraceCallback) Option {
	return func(c *Config) {
		c.Trace = trace
	}
}

// WithDelay replaces the delay primitive used between a command write and
// its response read. Intended for tests; the default is time.Sleep.
func WithDelay(delay func(time.Duration)) Option {
	return func(c *Config) {
		if delay != nil {
			c.Delay = delay
		}
	}
}

// WithIdentityRefresh selects when the driver re-fetches device identity.
// Default is IdentityOnInit.
func WithIdentityRefresh(policy IdentityRefresh) Option {
	return func(c *Config) {
		c.IdentityRefresh = policy
	}
}
