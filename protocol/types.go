package protocol

// DeviceInfo contains RNG90 identity information.
// Returned by the Info command.
type DeviceInfo struct {
	// RFU is reserved for future use
	RFU byte

	// DeviceID identifies the device type
	DeviceID byte

	// SiliconID identifies the silicon variant
	SiliconID byte

	// SiliconRev is the silicon revision
	SiliconRev byte
}

// ParseInfoResponse extracts device identity from an Info command payload.
// The payload is the validated response payload as returned by
// ParseResponse (four bytes for a 7-byte Info frame).
func ParseInfoResponse(payload []byte) (DeviceInfo, error) {
	if len(payload) < InfoResponseSize-1-ChecksumSize {
		return DeviceInfo{}, &ShortResponseError{
			Count: len(payload) + 1 + ChecksumSize,
			Min:   InfoResponseSize,
		}
	}

	return DeviceInfo{
		RFU:        payload[0],
		DeviceID:   payload[1],
		SiliconID:  payload[2],
		SiliconRev: payload[3],
	}, nil
}
