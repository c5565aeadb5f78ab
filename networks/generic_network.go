package networks

import (
	"encoding/json"
)

type GenericNetworkConfig struct {
	Name               string   `json:"name"`
	AlternativeNames   []string `json:"alternative_names"`
	SS58Prefix         uint16   `json:"ss58_prefix"`
	NativeTokenSymbol  string   `json:"native_token_symbol"`
	NativeTokenDecimal uint64   `json:"native_token_decimal"`
	EVM                bool     `json:"evm"`
}

// GenericNetwork is a Network fully described by its config. Built-in and
// custom networks are both GenericNetworks.
type GenericNetwork struct {
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	return &GenericNetwork{config: config}
}

func (gn *GenericNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNetwork) GetSS58Prefix() uint16 {
	return gn.config.SS58Prefix
}

func (gn *GenericNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericNetwork) GetNativeTokenDecimal() uint64 {
	return gn.config.NativeTokenDecimal
}

func (gn *GenericNetwork) HasEVM() bool {
	return gn.config.EVM
}

func (gn *GenericNetwork) MarshalJSON() ([]byte, error) {
	return json.Marshal(gn.config)
}
