// Package credentials generates login credentials for employees created
// through join-request approval.
package credentials

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewEmployeeCode returns a login code of the form "EMP-4821".
func NewEmployeeCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate employee code: %w", err)
	}
	return fmt.Sprintf("EMP-%04d", n.Int64()+1000), nil
}

// NewTempPassword returns a random temporary password. The receiving
// employee is forced to change it on first login.
func NewTempPassword(length int) (string, error) {
	if length <= 0 {
		length = 10
	}
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
