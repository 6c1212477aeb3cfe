package protocol

// DeviceAddress is the fixed 7-bit I2C address of the RNG90.
const DeviceAddress = 0x40

// Word-address selectors. The selector is the first byte of every write
// transaction and chooses the device register the write targets. It is
// not covered by the frame checksum.
const (
	// WordAddressReset resets the device I/O buffer and wakes a sleeping device
	WordAddressReset = 0x00

	// WordAddressSleep puts the device into low-power sleep
	WordAddressSleep = 0x01

	// WordAddressCommand submits a command frame for execution
	WordAddressCommand = 0x03
)

// Command opcodes per the RNG90 datasheet.
const (
	// OpRead reads a 16-byte block from the configuration zone
	OpRead = 0x02

	// OpRandom generates 32 bytes of random data
	OpRandom = 0x16

	// OpInfo reports device identity information
	OpInfo = 0x30

	// OpSelfTest runs or queries the on-chip health tests
	OpSelfTest = 0x77
)

// Frame layout constants. A command frame is
//
//	[Count][Opcode][Param1][Param2-low][Param2-high][Data...][CRC-low][CRC-high]
//
// and a response frame is [Count][Data...][CRC-low][CRC-high].
// Count includes itself and the checksum; the word-address selector
// prepended before transmission is not part of the frame.
const (
	// ChecksumSize is the size of the trailing checksum in bytes
	ChecksumSize = 2

	// MinFrameSize is the smallest legal frame: count, one byte, checksum
	MinFrameSize = 4

	// CommandOverhead is the non-data portion of a command frame:
	// count(1) + opcode(1) + param1(1) + param2(2) + checksum(2)
	CommandOverhead = 7

	// StatusFrameSize is the size of a status/error response frame
	StatusFrameSize = 4

	// InfoResponseSize is the size of an Info command response
	InfoResponseSize = 7

	// ReadResponseSize is the size of a Read command response
	ReadResponseSize = 19

	// RandomResponseSize is the size of a successful Random response
	RandomResponseSize = 35

	// MaxResponseSize is the largest response any command produces
	MaxResponseSize = RandomResponseSize

	// RandomPayloadSize is the number of random bytes per Random response
	RandomPayloadSize = 32

	// RandomFillerSize is the size of the ignored input field the Random
	// command requires in its request
	RandomFillerSize = 20
)

// Device status codes, reported in the second byte of a 4-byte status frame.
const (
	// StatusSuccess indicates the command executed successfully
	StatusSuccess = 0x00

	// StatusParseError indicates the command frame could not be parsed
	StatusParseError = 0x03

	// StatusSelfTestError indicates an on-chip health test failed
	StatusSelfTestError = 0x07

	// StatusExecutionError indicates the command could not be executed
	StatusExecutionError = 0x0F

	// StatusAfterWake is reported by the first read after a wake
	StatusAfterWake = 0x11

	// StatusWatchdogExpire warns that the watchdog is about to force sleep
	StatusWatchdogExpire = 0xEE

	// StatusCRCError indicates the device rejected the frame checksum
	StatusCRCError = 0xFF
)
