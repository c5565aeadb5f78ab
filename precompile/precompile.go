// Package precompile derives the ERC-20 precompile address that exposes a
// pallet-assets asset to the EVM.
//
// The 20 bytes are: asset id (4 bytes, big endian) | 12 zero bytes |
// 0x01200000. There is no inverse.
package precompile

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/tranvictor/addrbridge/checksum"
	"github.com/tranvictor/addrbridge/common"
)

const (
	zeroPadding    = "000000000000000000000000"
	palletInstance = "01200000"
)

// AssetIDToAddress returns the checksummed precompile address for id.
func AssetIDToAddress(id uint32) string {
	addr, err := checksum.Checksum(fmt.Sprintf("%08x%s%s", id, zeroPadding, palletInstance))
	if err != nil {
		// 40 hex chars by construction
		panic(err)
	}
	return addr
}

// ParseAssetID reads a base-10 asset id. Anything other than plain digits
// (signs, fractions, exponents, hex) and values above 4294967295 are
// OutOfRange since the id domain is numeric.
func ParseAssetID(str string) (uint32, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, common.NewConversionError(common.OutOfRange, str, fmt.Errorf("empty asset id"))
	}
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return 0, common.NewConversionError(common.OutOfRange, str, fmt.Errorf("asset id must be a plain base-10 integer"))
		}
	}
	id, ok := new(big.Int).SetString(str, 10)
	if !ok {
		return 0, common.NewConversionError(common.OutOfRange, str, fmt.Errorf("can't convert %s to big int", str))
	}
	if !id.IsUint64() || id.Uint64() > math.MaxUint32 {
		return 0, common.NewConversionError(common.OutOfRange, str, fmt.Errorf("asset id must be at most %d", uint64(math.MaxUint32)))
	}
	return uint32(id.Uint64()), nil
}
