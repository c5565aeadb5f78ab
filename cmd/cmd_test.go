package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/addrbridge/bridge"
	"github.com/tranvictor/addrbridge/common"
	"github.com/tranvictor/addrbridge/config"
	"github.com/tranvictor/addrbridge/networks"
	"github.com/tranvictor/addrbridge/ss58"
	"github.com/tranvictor/addrbridge/ui"
)

const (
	aliceSubstrate = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	sampleEvm      = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "addrbridge-cmd")
	if err != nil {
		panic(err)
	}
	networks.SetCustomNetworksDir(dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func resetConfig(t *testing.T) {
	t.Helper()
	reset := func() {
		config.Network = "polkadot"
		config.Prefix = -1
		config.AssumeYes = false
		config.JSONOutput = false
		config.Lowercase = false
	}
	reset()
	t.Cleanup(reset)
}

func TestChecksumCommand(t *testing.T) {
	resetConfig(t)
	u := ui.NewRecordingUI()
	require.NoError(t, runChecksum(u, []string{strings.ToLower(sampleEvm)}))
	assert.Equal(t, []string{sampleEvm}, u.MethodValues("Success"))
	assert.Empty(t, u.MethodValues("Warn"))
}

func TestChecksumCommandWarnsOnBadCasing(t *testing.T) {
	resetConfig(t)
	u := ui.NewRecordingUI()
	bad := "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	require.NoError(t, runChecksum(u, []string{bad}))
	assert.Len(t, u.MethodValues("Warn"), 1)
	assert.Equal(t, []string{sampleEvm}, u.MethodValues("Success"))
}

func TestChecksumCommandReportsEachFailure(t *testing.T) {
	resetConfig(t)
	u := ui.NewRecordingUI()
	err := runChecksum(u, []string{sampleEvm, "0x1234", "nothex"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Len(t, u.MethodValues("Error"), 2)
	assert.Len(t, u.MethodValues("Success"), 1)
}

func TestEvmToSubUsesNetworkPrefix(t *testing.T) {
	resetConfig(t)
	config.Network = "kusama"
	u := ui.NewRecordingUI()
	require.NoError(t, runEvmToSub(u, []string{sampleEvm}))
	assert.Equal(t, []string{"kusama (prefix 2)"}, u.MethodValues("Interpret"))

	out := u.MethodValues("Success")
	require.Len(t, out, 1)
	prefix, account, err := ss58.Decode(out[0])
	require.NoError(t, err)
	assert.Equal(t, uint16(2), prefix)
	assert.Equal(t, bridge.EthDerived, bridge.OriginOf(account))
}

func TestExplicitPrefixOverridesNetwork(t *testing.T) {
	resetConfig(t)
	config.Network = "kusama"
	config.Prefix = 1284
	u := ui.NewRecordingUI()
	require.NoError(t, runEvmToSub(u, []string{sampleEvm}))
	assert.Equal(t, []string{"moonbeam (prefix 1284)"}, u.MethodValues("Interpret"))
}

func TestPrefixOutOfRange(t *testing.T) {
	resetConfig(t)
	config.Prefix = 16384
	err := runEvmToSub(ui.NewRecordingUI(), []string{sampleEvm})
	assert.True(t, common.IsKind(err, common.OutOfRange))
}

func TestUnknownNetworkSuggests(t *testing.T) {
	resetConfig(t)
	config.Network = "kusma"
	err := runEvmToSub(ui.NewRecordingUI(), []string{sampleEvm})
	require.Error(t, err)
	assert.True(t, errors.Is(err, networks.ErrNetworkNotFound))
	assert.Contains(t, err.Error(), "kusama")
}

func TestSubToEvmEthDerivedNeedsNoConfirmation(t *testing.T) {
	resetConfig(t)
	sub, err := bridge.EvmToSubstrate(sampleEvm, 0)
	require.NoError(t, err)

	u := ui.NewRecordingUI()
	require.NoError(t, runSubToEvm(u, []string{sub}))
	assert.Empty(t, u.MethodValues("Confirm"))
	assert.Contains(t, u.MethodValues("KeyValue"), "EVM: "+sampleEvm)
}

func TestSubToEvmNativeDeclined(t *testing.T) {
	resetConfig(t)
	u := ui.NewRecordingUI("n")
	err := runSubToEvm(u, []string{aliceSubstrate})
	assert.True(t, errors.Is(err, errNotAcknowledged))
	assert.Len(t, u.MethodValues("Confirm"), 1)
	assert.NotEmpty(t, u.MethodValues("Critical"))
	assert.Empty(t, u.MethodValues("KeyValue"))
}

func TestSubToEvmNativeAccepted(t *testing.T) {
	resetConfig(t)
	u := ui.NewRecordingUI("y")
	require.NoError(t, runSubToEvm(u, []string{aliceSubstrate}))

	want, err := bridge.SubstrateToEvm(aliceSubstrate)
	require.NoError(t, err)
	assert.Contains(t, u.MethodValues("KeyValue"), "EVM: "+want+" (display only)")
}

func TestSubToEvmAssumeYes(t *testing.T) {
	resetConfig(t)
	config.AssumeYes = true
	u := ui.NewRecordingUI()
	require.NoError(t, runSubToEvm(u, []string{aliceSubstrate}))
	assert.Empty(t, u.MethodValues("Confirm"))
}

func TestSubToEvmJSONRequiresYes(t *testing.T) {
	resetConfig(t)
	config.JSONOutput = true
	u := ui.NewRecordingUI()
	err := runSubToEvm(u, []string{aliceSubstrate})
	assert.True(t, errors.Is(err, errNotAcknowledged))

	config.AssumeYes = true
	u = ui.NewRecordingUI()
	require.NoError(t, runSubToEvm(u, []string{aliceSubstrate}))

	var out struct {
		Input  string `json:"input"`
		Result struct {
			Prefix uint16 `json:"prefix"`
			Origin string `json:"origin"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(u.Output()), &out))
	assert.Equal(t, aliceSubstrate, out.Input)
	assert.Equal(t, uint16(42), out.Result.Prefix)
	assert.Equal(t, "native", out.Result.Origin)
}

func TestSubToEvmBadChecksum(t *testing.T) {
	resetConfig(t)
	err := runSubToEvm(ui.NewRecordingUI(), []string{"5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQZ"})
	require.Error(t, err)
	kind := common.KindOf(err)
	assert.True(t, kind == common.ChecksumMismatch || kind == common.InvalidLength, "%v", err)
}

func TestConvertCommandBothDirections(t *testing.T) {
	resetConfig(t)
	config.Network = "substrate"
	u := ui.NewRecordingUI()
	require.NoError(t, runConvert(u, []string{sampleEvm}))
	out := u.MethodValues("Success")
	require.Len(t, out, 1)

	u = ui.NewRecordingUI()
	require.NoError(t, runConvert(u, []string{out[0]}))
	assert.Contains(t, u.MethodValues("KeyValue"), "EVM: "+sampleEvm)
	assert.Equal(t, []string{out[0]}, u.MethodValues("Section"))
	assert.True(t, u.HasMessage("ss58 address on substrate (prefix 42)"))
}

func TestLowercaseOutput(t *testing.T) {
	resetConfig(t)
	config.Lowercase = true
	lower := strings.ToLower(sampleEvm)

	u := ui.NewRecordingUI()
	require.NoError(t, runChecksum(u, []string{sampleEvm}))
	assert.Equal(t, []string{lower}, u.MethodValues("Success"))

	sub, err := bridge.EvmToSubstrate(sampleEvm, 0)
	require.NoError(t, err)
	u = ui.NewRecordingUI()
	require.NoError(t, runSubToEvm(u, []string{sub}))
	assert.Contains(t, u.MethodValues("KeyValue"), "EVM: "+lower)

	u = ui.NewRecordingUI()
	require.NoError(t, runConvert(u, []string{sub}))
	assert.Contains(t, u.MethodValues("KeyValue"), "EVM: "+lower)

	u = ui.NewRecordingUI()
	require.NoError(t, runAsset(u, []string{"4294967295"}))
	assert.Contains(t, u.MethodValues("KeyValue"), "Precompile: 0xffffffff00000000000000000000000001200000")

	config.JSONOutput = true
	u = ui.NewRecordingUI()
	require.NoError(t, runConvert(u, []string{sub}))
	var out struct {
		Result struct {
			Output string `json:"output"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(u.Output()), &out))
	assert.Equal(t, lower, out.Result.Output)
}

func TestAssetCommand(t *testing.T) {
	resetConfig(t)
	u := ui.NewRecordingUI()
	require.NoError(t, runAsset(u, []string{"0"}))
	assert.Contains(t, u.MethodValues("KeyValue"), "Precompile: 0x0000000000000000000000000000000001200000")

	for _, bad := range []string{"-1", "4294967296", "1.5"} {
		err := runAsset(ui.NewRecordingUI(), []string{bad})
		assert.True(t, common.IsKind(err, common.OutOfRange), bad)
	}
}

func TestAssetCommandJSON(t *testing.T) {
	resetConfig(t)
	config.JSONOutput = true
	u := ui.NewRecordingUI()
	err := runAsset(u, []string{"1984", "-5"})
	require.Error(t, err)

	var out []struct {
		Input  string       `json:"input"`
		Result assetAddress `json:"result"`
		Error  string       `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(u.Output()), &out))
	require.Len(t, out, 2)
	assert.Equal(t, uint32(1984), out[0].Result.AssetID)
	assert.NotEmpty(t, out[1].Error)
}

func TestSs58Commands(t *testing.T) {
	resetConfig(t)
	u := ui.NewRecordingUI()
	require.NoError(t, runSs58Encode(u, []string{"0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"}))
	assert.Equal(t, []string{"15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"}, u.MethodValues("Success"))

	u = ui.NewRecordingUI()
	require.NoError(t, runSs58Decode(u, []string{aliceSubstrate}))
	assert.Contains(t, u.MethodValues("KeyValue"), "Network: substrate (prefix 42)")
	assert.Contains(t, u.MethodValues("KeyValue"), "Account: 0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")

	config.Network = "kusama"
	u = ui.NewRecordingUI()
	require.NoError(t, runSs58Reencode(u, []string{aliceSubstrate}))
	assert.Equal(t, []string{"HNZata7iMYWmk5RvZRTiAsSDhV8366zq2YGb3tLH5Upf74F"}, u.MethodValues("Success"))
}

func TestListNetworks(t *testing.T) {
	resetConfig(t)
	u := ui.NewRecordingUI()
	require.NoError(t, runListNetworks(u))
	assert.Contains(t, u.MethodValues("Table"), "kusama | ksm | 2 | KSM | 12 | ")
	assert.Contains(t, u.MethodValues("Table"), "moonbeam | glmr | 1284 | GLMR | 18 | yes")
}

func TestAddNetworkCommand(t *testing.T) {
	resetConfig(t)
	old := networks.CustomNetworksDir()
	networks.SetCustomNetworksDir(t.TempDir())
	defer networks.SetCustomNetworksDir(old)

	u := ui.NewRecordingUI()
	require.NoError(t, runAddNetwork(u, `{"name":"cmd-test-net","ss58_prefix":77,"native_token_symbol":"TST"}`, false))
	_, err := os.Stat(filepath.Join(networks.CustomNetworksDir(), "cmd-test-net.json"))
	require.NoError(t, err)

	err = runAddNetwork(ui.NewRecordingUI(), `{"name":"cmd-test-net","ss58_prefix":78}`, false)
	assert.Error(t, err)

	u = ui.NewRecordingUI()
	require.NoError(t, runAddNetwork(u, `{"name":"cmd-test-net","ss58_prefix":78}`, true))
	assert.NotEmpty(t, u.MethodValues("Warn"))

	n, err := networks.GetNetwork("cmd-test-net")
	require.NoError(t, err)
	assert.Equal(t, uint16(78), n.GetSS58Prefix())

	assert.Error(t, runAddNetwork(ui.NewRecordingUI(), "", false))
}
