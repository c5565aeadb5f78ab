package checksum

import (
	"strings"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/addrbridge/common"
)

// Vectors from the EIP-55 reference.
var eip55Vectors = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	"0x52908400098527886E0F7030069857D2E4169EE7",
	"0x8617E340B3D01FA5F11F306F4090FD50E238070D",
	"0xde709f2102306220921060314715629080e2fb77",
	"0x27b1fdb04752bbc536007a920d24acb045561c26",
}

func TestChecksumVectors(t *testing.T) {
	for _, want := range eip55Vectors {
		t.Run(want, func(t *testing.T) {
			got, err := Checksum(strings.ToLower(want))
			require.NoError(t, err)
			assert.Equal(t, want, got)

			got, err = Checksum(strings.ToUpper(want[2:]))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestChecksumMatchesGoEthereum(t *testing.T) {
	inputs := []string{
		"0x0000000000000000000000000000000000000000",
		"0xffffffffffffffffffffffffffffffffffffffff",
		"0xabcdefabcdefabcdefabcdefabcdefabcdefabcd",
		"d8da6bf26964af9d7eed9e03e53415d37aa96045",
		"0x1234567890abcdef1234567890abcdef12345678",
	}
	for _, in := range inputs {
		got, err := Checksum(in)
		require.NoError(t, err)
		assert.Equal(t, ethcommon.HexToAddress(in).Hex(), got, in)
	}
}

func TestChecksumIdempotent(t *testing.T) {
	for _, in := range append(eip55Vectors, "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd") {
		once, err := Checksum(in)
		require.NoError(t, err)
		twice, err := Checksum(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestChecksumErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  common.ErrorKind
	}{
		{"empty", "", common.InvalidLength},
		{"only prefix", "0x", common.InvalidLength},
		{"short", "0x1234", common.InvalidLength},
		{"long", "0x" + strings.Repeat("a", 42), common.InvalidLength},
		{"odd", "0x" + strings.Repeat("a", 39), common.InvalidLength},
		{"non hex", "0x" + strings.Repeat("g", 40), common.InvalidHex},
		{"non hex short", "0xzz", common.InvalidHex},
		{"inner space", "0x5aAeb6053F3E94C9b9A0 f33669435E7Ef1BeAed", common.InvalidHex},
		{"leading space", " 0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", common.InvalidHex},
		{"trailing newline", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed\n", common.InvalidHex},
		{"leading tab", "\t5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", common.InvalidHex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Checksum(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.kind, common.KindOf(err))
		})
	}
}

func TestIsChecksummed(t *testing.T) {
	assert.True(t, IsChecksummed("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.False(t, IsChecksummed(" 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.False(t, IsChecksummed("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"))
	assert.True(t, IsChecksummed("0x0000000000000000000000000000000000000000"))
	assert.False(t, IsChecksummed("not an address"))
}

func TestChecksumBytes(t *testing.T) {
	var addr [AddressLength]byte
	for i := range addr {
		addr[i] = byte(i * 13)
	}
	assert.Equal(t, ethcommon.BytesToAddress(addr[:]).Hex(), ChecksumBytes(addr))
}
