package rng90

// Direction indicates which way a traced frame travelled.
type Direction int

const (
	// DirWrite is a frame written to the device, including its selector byte
	DirWrite Direction = iota

	// DirRead is a frame read back from the device
	DirRead
)

// String returns "write" or "read".
func (d Direction) String() string {
	if d == DirWrite {
		return "write"
	}
	return "read"
}

// Trace is a structured record of one bus frame, passed to TraceCallback.
type Trace struct {
	// Op is the driver operation the frame belongs to ("init", "random", ...)
	Op string

	// Dir indicates whether the frame was written or read
	Dir Direction

	// Frame holds the raw frame bytes. The slice is only valid for the
	// duration of the callback; copy it if it must be retained.
	Frame []byte

	// Valid is false for read frames that failed checksum validation.
	// Write frames are always recorded as valid.
	Valid bool
}

// TraceCallback receives a record for every frame the driver exchanges
// with the device. It is a pure side channel: implementations must not
// retain Trace.Frame and cannot influence the driver's behaviour.
// Implementations should return quickly to avoid distorting command timing.
//
// Example:
//
//	dev := rng90.New(bus, rng90.WithTrace(func(t rng90.Trace) {
//	    fmt.Printf("[%s] %s % X valid=%v\n", t.Op, t.Dir, t.Frame, t.Valid)
//	}))
type TraceCallback func(Trace)

// Logger is an optional logging interface that can be provided to the
// driver. This allows integration with any logging framework.
//
// Example with zerolog:
//
//	type ZLogger struct{ l zerolog.Logger }
//	func (z *ZLogger) Debug(msg string, kv ...interface{}) { z.l.Debug().Fields(kv).Msg(msg) }
//	func (z *ZLogger) Info(msg string, kv ...interface{})  { z.l.Info().Fields(kv).Msg(msg) }
//	func (z *ZLogger) Error(msg string, kv ...interface{}) { z.l.Error().Fields(kv).Msg(msg) }
//
//	dev := rng90.New(bus, rng90.WithLogger(&ZLogger{l: log.Logger}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
