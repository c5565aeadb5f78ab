package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tranvictor/addrbridge/common"
	"github.com/tranvictor/addrbridge/config"
	"github.com/tranvictor/addrbridge/networks"
	"github.com/tranvictor/addrbridge/ss58"
	"github.com/tranvictor/addrbridge/ui"
)

// resolvePrefix picks the SS58 prefix from --prefix or --network. The
// returned network is nil when an explicit prefix matches none.
func resolvePrefix() (uint16, networks.Network, error) {
	if config.Prefix >= 0 {
		if config.Prefix > ss58.MaxPrefix {
			return 0, nil, common.NewConversionError(
				common.OutOfRange,
				fmt.Sprintf("%d", config.Prefix),
				fmt.Errorf("ss58 prefix must be between 0 and %d", ss58.MaxPrefix),
			)
		}
		prefix := uint16(config.Prefix)
		n, _ := networks.GetNetworkByPrefix(prefix)
		return prefix, n, nil
	}
	n, err := networks.GetNetwork(config.Network)
	if err != nil {
		if suggestions := networks.Suggest(config.Network); len(suggestions) > 0 {
			return 0, nil, fmt.Errorf("%w. Did you mean: %s?", err, strings.Join(suggestions, ", "))
		}
		return 0, nil, err
	}
	return n.GetSS58Prefix(), n, nil
}

func describePrefix(prefix uint16, n networks.Network) string {
	if n == nil {
		return fmt.Sprintf("prefix %d", prefix)
	}
	return fmt.Sprintf("%s (prefix %d)", n.GetName(), prefix)
}

// evmText applies --lowercase to a checksummed EVM address.
func evmText(addr string) string {
	if config.Lowercase {
		return strings.ToLower(addr)
	}
	return addr
}

func networkForPrefix(prefix uint16) networks.Network {
	n, _ := networks.GetNetworkByPrefix(prefix)
	return n
}

func printJSON(u ui.UI, v any) error {
	enc := json.NewEncoder(u.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type jsonResult struct {
	Input  string `json:"input"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// forEachInput converts every argument with fn and hands successes to show.
// One bad input does not hide the results of the others. With --json the
// results are printed once at the end instead.
func forEachInput[T any](u ui.UI, args []string, fn func(input string) (T, error), show func(input string, result T)) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one input is required")
	}
	var (
		failed  int
		lastErr error
		out     []jsonResult
	)
	for _, arg := range args {
		input := strings.TrimSpace(arg)
		result, err := fn(input)
		if err != nil {
			failed++
			lastErr = err
			out = append(out, jsonResult{Input: input, Error: err.Error()})
			if len(args) > 1 && !config.JSONOutput {
				u.Error("%s: %s", input, err)
			}
			continue
		}
		out = append(out, jsonResult{Input: input, Result: result})
		if !config.JSONOutput {
			show(input, result)
		}
	}
	if config.JSONOutput {
		var v any = out
		if len(out) == 1 {
			v = out[0]
		}
		if err := printJSON(u, v); err != nil {
			return err
		}
	}
	switch {
	case failed == 0:
		return nil
	case len(args) == 1:
		return lastErr
	default:
		return fmt.Errorf("%d of %d inputs failed", failed, len(args))
	}
}
