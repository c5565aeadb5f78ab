// Package ss58 encodes and decodes 32-byte account ids in the SS58
// network-prefixed, base-58 address format.
//
// Layout of the decoded bytes:
//
//	prefix (1 or 2 bytes) | account (32 bytes) | checksum (2 bytes)
//
// The checksum is the first two bytes of blake2b-512("SS58PRE" | prefix | account).
package ss58

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/tranvictor/addrbridge/common"
)

const (
	AccountLength  = 32
	ChecksumLength = 2
	MaxPrefix      = 16383

	// prefixes below this serialize to a single byte
	simplePrefixLimit = 64
)

var checksumPreimage = []byte("SS58PRE")

type AccountID [AccountLength]byte

// Encode returns the SS58 form of account under network prefix.
func Encode(prefix uint16, account AccountID) (string, error) {
	ident, err := encodePrefix(prefix)
	if err != nil {
		return "", err
	}
	body := make([]byte, 0, len(ident)+AccountLength+ChecksumLength)
	body = append(body, ident...)
	body = append(body, account[:]...)
	sum := checksum(body)
	body = append(body, sum[:ChecksumLength]...)
	return base58.Encode(body), nil
}

// Decode parses address and returns its network prefix and account id. The
// embedded checksum must match a freshly computed one.
func Decode(address string) (uint16, AccountID, error) {
	var account AccountID
	if address == "" {
		return 0, account, common.NewConversionError(common.InvalidBase58, address, fmt.Errorf("empty address"))
	}
	raw, err := base58.Decode(address)
	if err != nil {
		return 0, account, common.NewConversionError(common.InvalidBase58, address, err)
	}
	prefix, prefixLen, err := decodePrefix(raw)
	if err != nil {
		return 0, account, common.NewConversionError(common.InvalidLength, address, err)
	}
	if len(raw) != prefixLen+AccountLength+ChecksumLength {
		return 0, account, common.NewConversionError(
			common.InvalidLength,
			address,
			fmt.Errorf("decoded %d bytes, want %d", len(raw), prefixLen+AccountLength+ChecksumLength),
		)
	}
	body := raw[:prefixLen+AccountLength]
	sum := checksum(body)
	if !bytes.Equal(sum[:ChecksumLength], raw[len(body):]) {
		return 0, account, common.NewConversionError(common.ChecksumMismatch, address, nil)
	}
	copy(account[:], body[prefixLen:])
	return prefix, account, nil
}

// Reencode moves address to another network prefix, keeping the account.
func Reencode(address string, prefix uint16) (string, error) {
	_, account, err := Decode(address)
	if err != nil {
		return "", err
	}
	return Encode(prefix, account)
}

func checksum(body []byte) [blake2b.Size]byte {
	preimage := make([]byte, 0, len(checksumPreimage)+len(body))
	preimage = append(preimage, checksumPreimage...)
	preimage = append(preimage, body...)
	return blake2b.Sum512(preimage)
}

// encodePrefix serializes prefix into its 1 or 2 byte identifier. For two
// byte prefixes the low 6 bits of the first byte hold bits 2..7 of the
// prefix with 0b01 on top; the second byte holds bits 8..13 in its low 6
// bits and bits 0..1 in its top 2 bits.
func encodePrefix(prefix uint16) ([]byte, error) {
	switch {
	case prefix < simplePrefixLimit:
		return []byte{byte(prefix)}, nil
	case prefix <= MaxPrefix:
		first := byte((prefix&0x00fc)>>2) | 0x40
		second := byte(prefix>>8) | byte(prefix&0x0003)<<6
		return []byte{first, second}, nil
	default:
		return nil, common.NewConversionError(
			common.OutOfRange,
			fmt.Sprintf("%d", prefix),
			fmt.Errorf("network prefix must be at most %d", MaxPrefix),
		)
	}
}

func decodePrefix(raw []byte) (uint16, int, error) {
	if len(raw) == 0 {
		return 0, 0, fmt.Errorf("empty payload")
	}
	switch first := raw[0]; {
	case first < simplePrefixLimit:
		return uint16(first), 1, nil
	case first < 128:
		if len(raw) < 2 {
			return 0, 0, fmt.Errorf("truncated two byte prefix")
		}
		second := raw[1]
		lower := (first << 2) | (second >> 6)
		upper := second & 0x3f
		prefix := uint16(lower) | uint16(upper)<<8
		if prefix < simplePrefixLimit {
			return 0, 0, fmt.Errorf("prefix %d must use the one byte form", prefix)
		}
		return prefix, 2, nil
	default:
		return 0, 0, fmt.Errorf("unsupported prefix byte 0x%02x", first)
	}
}
