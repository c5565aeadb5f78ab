package common

import (
	"encoding/hex"
)

// Has0xPrefix validates str begins with '0x' or '0X'.
func Has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

func Strip0x(str string) string {
	if Has0xPrefix(str) {
		return str[2:]
	}
	return str
}

func IsHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// DecodeFixedHex decodes str (with or without 0x) into exactly size bytes.
// Lexical problems are reported before length problems so "0xzz" is
// InvalidHex rather than InvalidLength. Surrounding whitespace is not
// stripped and counts as a non-hex character.
func DecodeFixedHex(str string, size int) ([]byte, error) {
	raw := Strip0x(str)
	for i := 0; i < len(raw); i++ {
		if !IsHexCharacter(raw[i]) {
			return nil, NewConversionError(InvalidHex, str, nil)
		}
	}
	if len(raw) != size*2 {
		return nil, NewConversionError(InvalidLength, str, nil)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, NewConversionError(InvalidHex, str, err)
	}
	return b, nil
}

// LooksLikeHex is a cheap lexical check used when detecting input kinds.
func LooksLikeHex(str string) bool {
	raw := Strip0x(str)
	if raw == "" {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if !IsHexCharacter(raw[i]) {
			return false
		}
	}
	return true
}
