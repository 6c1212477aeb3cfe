package rng90

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/darranl/go-rng90/protocol"
)

func TestSelfTestResultMapping(t *testing.T) {
	tests := []struct {
		code     byte
		expected SelfTestResult
		str      string
	}{
		{0x00, SelfTestPassed, "self-test passed"},
		{0x01, SelfTestDRBGFailed, "DRBG test failed"},
		{0x02, SelfTestDRBGNotRun, "DRBG test not run"},
		{0x10, SelfTestSHA256NotRun, "SHA-256 test not run"},
		{0x12, SelfTestNeitherRun, "no tests run"},
		{0x20, SelfTestSHA256Failed, "SHA-256 test failed"},
		{0x21, SelfTestBothFailed, "DRBG and SHA-256 tests failed"},
		{0x33, SelfTestUnknown, "unknown self-test result"},
		{0x77, SelfTestUnknown, "unknown self-test result"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			result := selfTestResult(tt.code)
			require.Equal(t, tt.expected, result)
			require.Equal(t, tt.str, result.String())
		})
	}

	require.Equal(t, "communication error", SelfTestCommError.String())
}

func TestSelfTestKindNames(t *testing.T) {
	require.Equal(t, "status", SelfTestStatus.String())
	require.Equal(t, "drbg", SelfTestDRBG.String())
	require.Equal(t, "sha256", SelfTestSHA256.String())
	require.Equal(t, "full", SelfTestFull.String())
	require.Equal(t, "invalid", SelfTestKind(0x42).String())
}

func TestSelfTest(t *testing.T) {
	bus := newMockBus(wakeResponse(), infoResponse(),
		frameResponse(byte(SelfTestPassed)))
	dev, delays := newTestDevice(bus)
	require.NoError(t, dev.Init())

	result, err := dev.SelfTest(SelfTestFull)
	require.NoError(t, err)
	require.Equal(t, SelfTestPassed, result)

	require.Equal(t,
		[]byte{protocol.WordAddressCommand, 0x07, 0x77, 0x21, 0x00, 0x00, 0x7E, 0x7F},
		bus.writes[len(bus.writes)-1])
	require.Contains(t, *delays, 50*time.Millisecond)
}

func TestSelfTestWaitBudgets(t *testing.T) {
	tests := []struct {
		kind SelfTestKind
		wait time.Duration
	}{
		{SelfTestStatus, time.Millisecond},
		{SelfTestDRBG, 35 * time.Millisecond},
		{SelfTestSHA256, 16 * time.Millisecond},
		{SelfTestFull, 50 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.Equal(t, tt.wait, tt.kind.wait())
		})
	}
}

func TestSelfTestDeviceFailure(t *testing.T) {
	bus := newMockBus(wakeResponse(), infoResponse(),
		frameResponse(byte(SelfTestDRBGFailed)))
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())

	result, err := dev.SelfTest(SelfTestDRBG)
	require.NoError(t, err, "a device-reported failure is a result, not an error")
	require.Equal(t, SelfTestDRBGFailed, result)
}

func TestSelfTestNotInitialized(t *testing.T) {
	dev, _ := newTestDevice(newMockBus())

	result, err := dev.SelfTest(SelfTestStatus)
	require.ErrorIs(t, err, ErrNotInitialized)
	require.Equal(t, SelfTestCommError, result)
}

func TestSelfTestCommFailure(t *testing.T) {
	bus := newMockBus(wakeResponse(), infoResponse())
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())

	bus.readErr = errors.New("bus timeout")
	result, err := dev.SelfTest(SelfTestStatus)
	require.True(t, IsCommError(err))
	require.Equal(t, SelfTestCommError, result,
		"transport failures map to the comm-error sentinel, never a device code")
}

func TestSelfTestCorruptResponse(t *testing.T) {
	corrupt := frameResponse(byte(SelfTestPassed))
	corrupt[1] ^= 0x01
	bus := newMockBus(wakeResponse(), infoResponse(), corrupt)
	dev, _ := newTestDevice(bus)
	require.NoError(t, dev.Init())

	result, err := dev.SelfTest(SelfTestStatus)
	require.True(t, protocol.IsCRCError(err))
	require.Equal(t, SelfTestCommError, result)
}
