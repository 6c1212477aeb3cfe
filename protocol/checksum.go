package protocol

// Checksum algorithm constants.
const (
	// Polynomial is the CRC-16 generator polynomial used by the RNG90
	Polynomial = 0x8005

	// crcHighBitMask is the high bit mask for the 16-bit remainder
	crcHighBitMask = 0x8000

	// bitsPerByte is the number of bits per byte
	bitsPerByte = 8
)

// reflect reverses the bit order of a byte: bit 0 becomes bit 7 and so on.
func reflect(data byte) byte {
	var reflection byte
	for bit := 0; bit < bitsPerByte; bit++ {
		if data&0x01 != 0 {
			reflection |= 1 << (7 - bit)
		}
		data >>= 1
	}
	return reflection
}

// Checksum computes the 16-bit frame checksum used by the RNG90.
//
// Parameters:
//   - Polynomial: 0x8005
//   - Initial value: 0x0000
//   - Input bytes are bit-reversed before division
//   - No output reflection, no final XOR
//
// The device transmits the result low byte first, high byte second, even
// though the rest of the protocol is described most-significant-bit-first.
// The checksum covers the Count byte through the last data byte.
func Checksum(data []byte) uint16 {
	var remainder uint16

	for _, b := range data {
		remainder ^= uint16(reflect(b)) << bitsPerByte

		for bit := 0; bit < bitsPerByte; bit++ {
			if remainder&crcHighBitMask != 0 {
				remainder = (remainder << 1) ^ Polynomial
			} else {
				remainder = remainder << 1
			}
		}
	}

	return remainder
}
