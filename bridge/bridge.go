// Package bridge converts between 20-byte EVM addresses and SS58 encoded
// 32-byte Substrate accounts.
//
// EVM to SS58 pads the address with twelve 0xEE bytes and is always
// reversible. SS58 to EVM strips that padding when present; for native
// accounts it falls back to the last 20 bytes of keccak256(account), which
// is one-way and only meaningful for display unless the account has been
// mapped on-chain. Callers get the origin back in Resolution so they can
// gate the native branch behind an explicit acknowledgment.
package bridge

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/tranvictor/addrbridge/checksum"
	"github.com/tranvictor/addrbridge/common"
	"github.com/tranvictor/addrbridge/ss58"
)

// Resolution is everything learned from decoding one SS58 address.
type Resolution struct {
	Address    string        `json:"address"`
	Prefix     uint16        `json:"prefix"`
	AccountHex string        `json:"account"`
	Origin     AccountOrigin `json:"origin"`
	EvmAddress string        `json:"evm_address"`
}

// Reversible is true when EvmAddress converts back to the same account.
func (r Resolution) Reversible() bool {
	return r.Origin == EthDerived
}

func EvmToSubstrate(addressHex string, prefix uint16) (string, error) {
	addr, err := checksum.Decode(addressHex)
	if err != nil {
		return "", common.NewConversionError(common.InvalidEvmAddress, addressHex, err)
	}
	return ss58.Encode(prefix, padEvmAddress(addr))
}

// SubstrateToEvm returns the checksummed EVM address for an SS58 address.
// See Resolve for the origin of the result.
func SubstrateToEvm(address string) (string, error) {
	res, err := Resolve(address)
	if err != nil {
		return "", err
	}
	return res.EvmAddress, nil
}

func Resolve(address string) (Resolution, error) {
	prefix, account, err := ss58.Decode(address)
	if err != nil {
		return Resolution{}, err
	}
	origin := OriginOf(account)
	return Resolution{
		Address:    address,
		Prefix:     prefix,
		AccountHex: hexutil.Encode(account[:]),
		Origin:     origin,
		EvmAddress: AccountToEvm(account, origin),
	}, nil
}

// AccountToEvm maps an account to its EVM form under the given origin.
func AccountToEvm(account ss58.AccountID, origin AccountOrigin) string {
	var addr [checksum.AddressLength]byte
	switch origin {
	case EthDerived:
		copy(addr[:], account[:checksum.AddressLength])
	default:
		digest := crypto.Keccak256(account[:])
		copy(addr[:], digest[len(digest)-checksum.AddressLength:])
	}
	return checksum.ChecksumBytes(addr)
}

// AccountToSubstrate encodes a raw 32-byte account id given as hex.
func AccountToSubstrate(accountHex string, prefix uint16) (string, error) {
	b, err := common.DecodeFixedHex(accountHex, ss58.AccountLength)
	if err != nil {
		return "", err
	}
	var account ss58.AccountID
	copy(account[:], b)
	return ss58.Encode(prefix, account)
}
