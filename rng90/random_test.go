package rng90

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/darranl/go-rng90/protocol"
)

// randomPayload builds a 32-byte payload with recognisable content.
func randomPayload(seed byte) []byte {
	payload := make([]byte, protocol.RandomPayloadSize)
	for i := range payload {
		payload[i] = seed + byte(i)
	}
	return payload
}

func TestRandomSingleChunk(t *testing.T) {
	payload := randomPayload(0x00)
	bus := newMockBus(wakeResponse(), infoResponse(), frameResponse(payload...))
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())

	buf := make([]byte, protocol.RandomPayloadSize)
	require.NoError(t, dev.Random(buf))
	require.Equal(t, payload, buf)

	cmd := bus.writes[len(bus.writes)-1]
	require.Equal(t, byte(protocol.WordAddressCommand), cmd[0])
	require.Equal(t, byte(0x1B), cmd[1], "count: 7 overhead + 20 filler")
	require.Equal(t, byte(protocol.OpRandom), cmd[2])
	require.Len(t, cmd, 1+protocol.CommandOverhead+protocol.RandomFillerSize)
}

func TestRandomPartialFinalChunk(t *testing.T) {
	first := randomPayload(0x00)
	second := randomPayload(0x40)
	bus := newMockBus(wakeResponse(), infoResponse(),
		frameResponse(first...), frameResponse(second...))
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())
	initWrites := len(bus.writes)

	buf := make([]byte, 50)
	require.NoError(t, dev.Random(buf))

	require.Equal(t, 2, len(bus.writes)-initWrites,
		"50 bytes must take exactly two device transactions")
	require.Equal(t, first, buf[:32])
	require.Equal(t, second[:18], buf[32:], "surplus of the final chunk is discarded")
}

func TestRandomWaitBudgets(t *testing.T) {
	bus := newMockBus(wakeResponse(), infoResponse(),
		frameResponse(randomPayload(0x00)...),
		frameResponse(randomPayload(0x40)...),
		frameResponse(randomPayload(0x80)...))
	dev, delays := newTestDevice(bus)
	require.NoError(t, dev.Init())
	*delays = nil

	buf := make([]byte, 96)
	require.NoError(t, dev.Random(buf))

	require.Equal(t,
		[]time.Duration{randomWaitFirst, randomWait, randomWait},
		*delays,
		"self-tests only inflate the first transaction after a wake")
}

func TestRandomRewakesAfterSleep(t *testing.T) {
	bus := newMockBus(wakeResponse(), infoResponse())
	dev, delays := newTestDevice(bus)
	require.NoError(t, dev.Init())

	// Generate once so the self-test latency has been paid.
	bus.addResponse(frameResponse(randomPayload(0x00)...))
	require.NoError(t, dev.Random(make([]byte, 8)))

	require.NoError(t, dev.Sleep())
	*delays = nil

	bus.addResponse(wakeResponse())
	bus.addResponse(frameResponse(randomPayload(0x40)...))
	require.NoError(t, dev.Random(make([]byte, 8)))

	require.False(t, dev.Sleeping())
	require.Contains(t, *delays, randomWaitFirst,
		"sleep discards self-test state, so the next chunk pays the full latency")
}

func TestRandomNotInitialized(t *testing.T) {
	bus := newMockBus()
	dev, _ := newTestDevice(bus)

	err := dev.Random(make([]byte, 8))
	require.ErrorIs(t, err, ErrNotInitialized)
	require.Zero(t, bus.transactions())
}

func TestRandomDeviceErrorFrame(t *testing.T) {
	bus := newMockBus(wakeResponse(), infoResponse(),
		frameResponse(protocol.StatusExecutionError))
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())

	err := dev.Random(make([]byte, 64))
	require.True(t, protocol.IsStatusError(err))

	var statusErr *protocol.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, byte(protocol.StatusExecutionError), statusErr.StatusCode)
}

func TestRandomAbortsOnMidStreamFailure(t *testing.T) {
	// Only the first of the two needed chunks is served; the second read
	// returns bus idle bytes.
	bus := newMockBus(wakeResponse(), infoResponse(),
		frameResponse(randomPayload(0x00)...))
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())

	err := dev.Random(make([]byte, 64))
	require.Error(t, err, "a failed second chunk must abort the whole call")
}

func TestRandomReadFailure(t *testing.T) {
	bus := newMockBus(wakeResponse(), infoResponse())
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())

	bus.readErr = errors.New("bus timeout")
	err := dev.Random(make([]byte, 8))
	require.True(t, IsCommError(err))
}

func TestRandomZeroLength(t *testing.T) {
	bus := newMockBus(wakeResponse(), infoResponse())
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())
	before := bus.transactions()

	require.NoError(t, dev.Random(nil))
	require.Equal(t, before, bus.transactions())
}

func TestReadFillsBuffer(t *testing.T) {
	payload := randomPayload(0x00)
	bus := newMockBus(wakeResponse(), infoResponse(), frameResponse(payload...))
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())

	buf := make([]byte, 16)
	n, err := dev.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	require.Equal(t, payload[:16], buf)
}

func TestReadConfig(t *testing.T) {
	block := make([]byte, ConfigBlockSize)
	for i := range block {
		block[i] = byte(i) * 3
	}
	bus := newMockBus(wakeResponse(), infoResponse(), frameResponse(block...))
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())

	data, err := dev.ReadConfig(2)
	require.NoError(t, err)
	require.Equal(t, block, data)

	cmd := bus.writes[len(bus.writes)-1]
	require.Equal(t, byte(protocol.OpRead), cmd[2])
	require.Equal(t, byte(8), cmd[4], "param2 low byte is the word address of block 2")
}

func TestReadConfigDeviceError(t *testing.T) {
	bus := newMockBus(wakeResponse(), infoResponse(),
		frameResponse(protocol.StatusParseError))
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())

	_, err := dev.ReadConfig(0xFF)
	require.True(t, protocol.IsStatusError(err))
}
