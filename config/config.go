package config

// Values bound to the command line flags. Commands read them after cobra
// has parsed the arguments.
var Network = "polkadot"

var (
	// Prefix overrides the network's SS58 prefix when >= 0.
	Prefix     int = -1
	AssumeYes  bool
	JSONOutput bool
	// Lowercase prints EVM addresses without EIP-55 casing.
	Lowercase bool
)
