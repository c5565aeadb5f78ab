package bridge

import (
	"github.com/tranvictor/addrbridge/ss58"
)

// paddingByte fills the 12 trailing bytes of an account id derived from an
// EVM address.
const paddingByte byte = 0xEE

// AccountOrigin tells whether a 32-byte account id was produced by padding
// an EVM address (and can be reversed) or is a native Substrate account.
type AccountOrigin uint8

const (
	Native AccountOrigin = iota
	EthDerived
)

func (o AccountOrigin) String() string {
	switch o {
	case EthDerived:
		return "eth-derived"
	default:
		return "native"
	}
}

// MarshalText lets origins show up by name in JSON output.
func (o AccountOrigin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// OriginOf classifies account by its trailing padding. The 0xEE suffix is a
// convention of the padding scheme, not a cryptographic guarantee.
func OriginOf(account ss58.AccountID) AccountOrigin {
	for _, b := range account[20:] {
		if b != paddingByte {
			return Native
		}
	}
	return EthDerived
}

func padEvmAddress(addr [20]byte) ss58.AccountID {
	var account ss58.AccountID
	copy(account[:], addr[:])
	for i := 20; i < ss58.AccountLength; i++ {
		account[i] = paddingByte
	}
	return account
}
