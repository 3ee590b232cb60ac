package brcode

import "math/rand"

const txidAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTransactionID returns a placeholder reference label of
// TransactionIDLength characters drawn uniformly from [A-Za-z0-9].
// It is not unique and not suitable as a security token.
func GenerateTransactionID() string {
	var buf [TransactionIDLength]byte
	for i := range buf {
		buf[i] = txidAlphabet[rand.Intn(len(txidAlphabet))]
	}
	return string(buf[:])
}
