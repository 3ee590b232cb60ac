package brcode

const hexTableUpper = "0123456789ABCDEF"

// appendHex16 appends v as exactly four uppercase hex digits.
func appendHex16(dst []byte, v uint16) []byte {
	return append(dst,
		hexTableUpper[v>>12&0x0f],
		hexTableUpper[v>>8&0x0f],
		hexTableUpper[v>>4&0x0f],
		hexTableUpper[v&0x0f],
	)
}

// appendLength appends n as a two digit, zero padded decimal.
func appendLength(dst []byte, n int) []byte {
	return append(dst, byte('0'+n/10), byte('0'+n%10))
}

// onlyDigits strips every byte that is not an ASCII digit.
func onlyDigits(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
