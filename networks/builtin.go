package networks

var (
	Polkadot = NewGenericNetwork(GenericNetworkConfig{
		Name:               "polkadot",
		AlternativeNames:   []string{"dot"},
		SS58Prefix:         0,
		NativeTokenSymbol:  "DOT",
		NativeTokenDecimal: 10,
	})
	AssetHubPolkadot = NewGenericNetwork(GenericNetworkConfig{
		Name:               "asset-hub-polkadot",
		AlternativeNames:   []string{"statemint", "ahp"},
		SS58Prefix:         0,
		NativeTokenSymbol:  "DOT",
		NativeTokenDecimal: 10,
		EVM:                true,
	})
	Kusama = NewGenericNetwork(GenericNetworkConfig{
		Name:               "kusama",
		AlternativeNames:   []string{"ksm"},
		SS58Prefix:         2,
		NativeTokenSymbol:  "KSM",
		NativeTokenDecimal: 12,
	})
	AssetHubKusama = NewGenericNetwork(GenericNetworkConfig{
		Name:               "asset-hub-kusama",
		AlternativeNames:   []string{"statemine", "ahk"},
		SS58Prefix:         2,
		NativeTokenSymbol:  "KSM",
		NativeTokenDecimal: 12,
		EVM:                true,
	})
	Astar = NewGenericNetwork(GenericNetworkConfig{
		Name:               "astar",
		SS58Prefix:         5,
		NativeTokenSymbol:  "ASTR",
		NativeTokenDecimal: 18,
		EVM:                true,
	})
	Substrate = NewGenericNetwork(GenericNetworkConfig{
		Name:               "substrate",
		AlternativeNames:   []string{"generic", "dev"},
		SS58Prefix:         42,
		NativeTokenSymbol:  "UNIT",
		NativeTokenDecimal: 12,
	})
	Westend = NewGenericNetwork(GenericNetworkConfig{
		Name:               "westend",
		AlternativeNames:   []string{"wnd"},
		SS58Prefix:         42,
		NativeTokenSymbol:  "WND",
		NativeTokenDecimal: 12,
	})
	Paseo = NewGenericNetwork(GenericNetworkConfig{
		Name:               "paseo",
		AlternativeNames:   []string{"pas"},
		SS58Prefix:         0,
		NativeTokenSymbol:  "PAS",
		NativeTokenDecimal: 10,
	})
	Moonbeam = NewGenericNetwork(GenericNetworkConfig{
		Name:               "moonbeam",
		AlternativeNames:   []string{"glmr"},
		SS58Prefix:         1284,
		NativeTokenSymbol:  "GLMR",
		NativeTokenDecimal: 18,
		EVM:                true,
	})
	Moonriver = NewGenericNetwork(GenericNetworkConfig{
		Name:               "moonriver",
		AlternativeNames:   []string{"movr"},
		SS58Prefix:         1285,
		NativeTokenSymbol:  "MOVR",
		NativeTokenDecimal: 18,
		EVM:                true,
	})
)
