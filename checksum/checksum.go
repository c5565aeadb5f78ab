// Package checksum implements EIP-55 mixed-case checksum encoding for
// 20-byte EVM addresses.
package checksum

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/tranvictor/addrbridge/common"
)

const AddressLength = 20

// Checksum validates addressHex (optional 0x, any case) and returns its
// canonical EIP-55 form prefixed with 0x.
func Checksum(addressHex string) (string, error) {
	b, err := Decode(addressHex)
	if err != nil {
		return "", err
	}
	return ChecksumBytes(b), nil
}

// Decode parses a 40 character hex address into its raw bytes. Letter case
// is ignored.
func Decode(addressHex string) ([AddressLength]byte, error) {
	var result [AddressLength]byte
	b, err := common.DecodeFixedHex(addressHex, AddressLength)
	if err != nil {
		return result, err
	}
	copy(result[:], b)
	return result, nil
}

func ChecksumBytes(addr [AddressLength]byte) string {
	buf := make([]byte, 2+AddressLength*2)
	copy(buf, "0x")
	hex.Encode(buf[2:], addr[:])
	applyCasing(buf[2:])
	return string(buf)
}

// applyCasing upper-cases letter i of the lowercase hex in place when
// nibble i of keccak256(hex) has its 0x8 bit set.
func applyCasing(lower []byte) {
	hash := crypto.Keccak256(lower)
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}
		if nibble&0x8 != 0 {
			lower[i] = c - 32
		}
	}
}

// IsChecksummed reports whether s is a valid address whose letter casing
// already matches EIP-55. All-lowercase and all-uppercase inputs only pass
// when they happen to equal the canonical form.
func IsChecksummed(s string) bool {
	sum, err := Checksum(s)
	if err != nil {
		return false
	}
	return common.Strip0x(s) == sum[2:]
}
