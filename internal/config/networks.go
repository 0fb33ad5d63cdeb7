package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/memedao/memedao-cli/internal/domain/config"
)

// DefaultNetwork is used when neither network nor rpc_url is configured
const DefaultNetwork = "fuji"

// KnownNetworks are the chains the DAO contracts are deployed to
var KnownNetworks = map[string]config.Network{
	"fuji": {
		ChainID:     43113,
		Name:        "fuji",
		RPCURL:      "https://api.avax-test.network/ext/bc/C/rpc",
		ExplorerURL: "https://testnet.snowtrace.io",
	},
	"avalanche": {
		ChainID:     43114,
		Name:        "avalanche",
		RPCURL:      "https://api.avax.network/ext/bc/C/rpc",
		ExplorerURL: "https://snowtrace.io",
	},
	"local": {
		ChainID: 31337,
		Name:    "local",
		RPCURL:  "http://127.0.0.1:8545",
	},
}

// ResolveNetwork looks up a network preset by name
func ResolveNetwork(name string) (*config.Network, error) {
	n, ok := KnownNetworks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown network %q (known: %s)", name, strings.Join(networkNames(), ", "))
	}
	return &n, nil
}

func networkNames() []string {
	names := make([]string, 0, len(KnownNetworks))
	for name := range KnownNetworks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
