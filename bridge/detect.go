package bridge

import (
	"fmt"
	"strings"

	"github.com/tranvictor/addrbridge/checksum"
	"github.com/tranvictor/addrbridge/common"
	"github.com/tranvictor/addrbridge/ss58"
)

type InputKind uint8

const (
	UnknownInput InputKind = iota
	EvmInput
	Ss58Input
)

func (k InputKind) String() string {
	switch k {
	case EvmInput:
		return "evm"
	case Ss58Input:
		return "ss58"
	default:
		return "unknown"
	}
}

// Detect guesses which format input is in. It is lexical only: an SS58
// string with a bad checksum is still reported as Ss58Input so the caller
// gets the precise decode error.
func Detect(input string) InputKind {
	input = strings.TrimSpace(input)
	if common.Has0xPrefix(input) && common.LooksLikeHex(input) {
		return EvmInput
	}
	if len(input) == checksum.AddressLength*2 && common.LooksLikeHex(input) {
		return EvmInput
	}
	if input == "" {
		return UnknownInput
	}
	if _, _, err := ss58.Decode(input); err != nil && common.IsKind(err, common.InvalidBase58) {
		return UnknownInput
	}
	return Ss58Input
}

// Conversion is the result of Convert in either direction.
type Conversion struct {
	Input  string      `json:"input"`
	Kind   InputKind   `json:"-"`
	Output string      `json:"output"`
	Ss58   *Resolution `json:"ss58,omitempty"`
}

// Convert detects the direction from input and converts it. prefix only
// matters for EVM input.
func Convert(input string, prefix uint16) (Conversion, error) {
	input = strings.TrimSpace(input)
	kind := Detect(input)
	switch kind {
	case EvmInput:
		out, err := EvmToSubstrate(input, prefix)
		if err != nil {
			return Conversion{}, err
		}
		return Conversion{Input: input, Kind: kind, Output: out}, nil
	case Ss58Input:
		res, err := Resolve(input)
		if err != nil {
			return Conversion{}, err
		}
		return Conversion{Input: input, Kind: kind, Output: res.EvmAddress, Ss58: &res}, nil
	default:
		return Conversion{}, common.NewConversionError(
			common.InvalidBase58,
			input,
			fmt.Errorf("neither an evm nor an ss58 address"),
		)
	}
}
