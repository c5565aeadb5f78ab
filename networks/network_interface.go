package networks

// Network describes how a chain encodes its accounts. Several networks may
// share an SS58 prefix.
type Network interface {
	GetName() string
	GetAlternativeNames() []string
	GetSS58Prefix() uint16
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() uint64
	// HasEVM is true for chains that run an EVM pallet and expose
	// asset precompiles.
	HasEVM() bool

	MarshalJSON() ([]byte, error)
}
