package brcode

import "strings"

const (
	crcSeed       uint16 = 0xFFFF
	crcPolynomial uint16 = 0x1021
)

// Checksum computes CRC-16/CCITT-FALSE over data: seed 0xFFFF, polynomial
// 0x1021, no reflection and no final XOR.
func Checksum(data []byte) uint16 {
	crc := crcSeed
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// CRC16 returns the checksum of input as four uppercase hex digits, the
// form carried by the value of field 63.
func CRC16(input string) string {
	var buf [crcHexLength]byte
	return string(appendHex16(buf[:0], Checksum([]byte(input))))
}

// VerifyChecksum reports whether payload ends with the CRC field and its
// value matches the checksum of everything before it. Hex case is ignored.
func VerifyChecksum(payload string) bool {
	n := len(payload)
	if n < len(crcMarker)+crcHexLength {
		return false
	}
	body := payload[:n-crcHexLength]
	if body[len(body)-len(crcMarker):] != crcMarker {
		return false
	}
	return strings.EqualFold(CRC16(body), payload[n-crcHexLength:])
}
