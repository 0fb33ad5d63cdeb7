package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Chain settings
	Network *Network

	// Contract addresses
	TokenAddress   common.Address
	StakingAddress common.Address
	DAOAddress     common.Address

	// Hex encoded signing key, empty means read-only
	PrivateKey string `json:"-"`
	// Further keys the session can switch to
	AccountKeys []string `json:"-"`

	Pinning PinningConfig

	// Display settings
	TokenDecimals int32
	DisplayPlaces int32

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Output         string // table, json or yaml
	AssumeYes      bool
	Timeout        time.Duration // overall wait for a transaction receipt
	CallTimeout    time.Duration // per chain or HTTP read
	PollInterval   time.Duration

	// Governance settings
	ProposalStartDelay  time.Duration
	MetadataConcurrency int
	MetadataCacheSize   int

	// Optional tokenomics allocation file
	TokenomicsFile string
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

// PinningConfig holds the metadata pinning service endpoints and credentials.
type PinningConfig struct {
	APIURL     string
	GatewayURL string
	JWT        string `json:"-"`
	APIKey     string `json:"-"`
	SecretKey  string `json:"-"`
}

// HasCredentials reports whether publishing is possible.
func (p PinningConfig) HasCredentials() bool {
	return p.JWT != "" || (p.APIKey != "" && p.SecretKey != "")
}

// CanSign reports whether a signing key is configured.
func (c *RuntimeConfig) CanSign() bool {
	return c.PrivateKey != ""
}
