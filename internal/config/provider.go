package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by viper
const EnvPrefix = "MEMEDAO"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	network, err := resolveNetwork(v)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		Network:    network,
		PrivateKey: strings.TrimSpace(v.GetString("private_key")),
		Pinning: config.PinningConfig{
			APIURL:     v.GetString("pinning.api_url"),
			GatewayURL: v.GetString("pinning.gateway_url"),
			JWT:        v.GetString("pinning.jwt"),
			APIKey:     v.GetString("pinning.api_key"),
			SecretKey:  v.GetString("pinning.secret_key"),
		},
		TokenDecimals:       v.GetInt32("token_decimals"),
		DisplayPlaces:       v.GetInt32("display_places"),
		Debug:               v.GetBool("debug"),
		NonInteractive:      v.GetBool("non_interactive"),
		Output:              strings.ToLower(v.GetString("output")),
		AssumeYes:           v.GetBool("yes"),
		Timeout:             v.GetDuration("timeout"),
		CallTimeout:         v.GetDuration("call_timeout"),
		PollInterval:        v.GetDuration("poll_interval"),
		ProposalStartDelay:  v.GetDuration("proposal_start_delay"),
		MetadataConcurrency: v.GetInt("metadata_concurrency"),
		MetadataCacheSize:   v.GetInt("metadata_cache_size"),
		TokenomicsFile:      v.GetString("tokenomics_file"),
	}
	if v.GetBool("json") {
		cfg.Output = "json"
	}
	cfg.JSON = cfg.Output == "json"
	if cfg.JSON || cfg.Output == "yaml" {
		cfg.NonInteractive = true
	}

	for _, entry := range v.GetStringSlice("accounts") {
		for _, key := range strings.Split(entry, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.AccountKeys = append(cfg.AccountKeys, key)
			}
		}
	}

	secrets := []*string{&cfg.PrivateKey, &cfg.Pinning.JWT, &cfg.Pinning.APIKey, &cfg.Pinning.SecretKey}
	for i := range cfg.AccountKeys {
		secrets = append(secrets, &cfg.AccountKeys[i])
	}
	for _, secret := range secrets {
		if *secret, err = ExpandEnvRefs(*secret); err != nil {
			return nil, err
		}
	}

	addresses := []struct {
		key    string
		target *common.Address
	}{
		{"token_address", &cfg.TokenAddress},
		{"staking_address", &cfg.StakingAddress},
		{"dao_address", &cfg.DAOAddress},
	}
	for _, a := range addresses {
		raw := strings.TrimSpace(v.GetString(a.key))
		if raw == "" {
			return nil, fmt.Errorf("%s is required (set %s_%s or add it to memedao.toml)", a.key, EnvPrefix, strings.ToUpper(a.key))
		}
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("%w for %s: %s", domain.ErrInvalidAddress, a.key, raw)
		}
		*a.target = common.HexToAddress(raw)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveNetwork starts from the named preset and applies rpc_url and
// chain_id overrides.
func resolveNetwork(v *viper.Viper) (*config.Network, error) {
	name := v.GetString("network")
	if name == "" {
		name = DefaultNetwork
	}

	network, err := ResolveNetwork(name)
	if err != nil {
		// A custom chain needs both an endpoint and an id
		if v.GetString("rpc_url") == "" || v.GetUint64("chain_id") == 0 {
			return nil, err
		}
		network = &config.Network{Name: name}
	}

	if raw := v.GetString("rpc_url"); raw != "" {
		rpcURL, err := ExpandEnvRefs(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve rpc_url: %w", err)
		}
		network.RPCURL = rpcURL
	}
	if id := v.GetUint64("chain_id"); id != 0 {
		network.ChainID = id
	}
	return network, nil
}

func validate(cfg *config.RuntimeConfig) error {
	var errs []error
	switch cfg.Output {
	case "table", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("output must be table, json or yaml, got %q", cfg.Output))
	}
	if cfg.TokenDecimals < 0 || cfg.TokenDecimals > 77 {
		errs = append(errs, fmt.Errorf("token_decimals out of range: %d", cfg.TokenDecimals))
	}
	if cfg.DisplayPlaces < 0 || cfg.DisplayPlaces > cfg.TokenDecimals {
		errs = append(errs, fmt.Errorf("display_places must be between 0 and token_decimals, got %d", cfg.DisplayPlaces))
	}
	if cfg.MetadataConcurrency < 1 {
		errs = append(errs, fmt.Errorf("metadata_concurrency must be at least 1, got %d", cfg.MetadataConcurrency))
	}
	if cfg.MetadataCacheSize < 1 {
		errs = append(errs, fmt.Errorf("metadata_cache_size must be at least 1, got %d", cfg.MetadataCacheSize))
	}
	if cfg.ProposalStartDelay < 0 {
		errs = append(errs, fmt.Errorf("proposal_start_delay must not be negative"))
	}
	if cfg.Timeout <= 0 || cfg.CallTimeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout and call_timeout must be positive"))
	}
	return errors.Join(errs...)
}

// SetupViper creates a viper instance reading, in increasing precedence,
// defaults, memedao.toml, .env and MEMEDAO_* environment variables.
// Flags are bound afterwards with BindFlags.
func SetupViper(workDir string) (*viper.Viper, error) {
	// .env never overrides variables already set in the environment
	envFile := filepath.Join(workDir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()

	v.SetConfigName("memedao")
	v.SetConfigType("toml")
	v.AddConfigPath(workDir)
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".memedao"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// AutomaticEnv only sees keys viper already knows about
	for _, key := range []string{"private_key", "accounts", "token_address", "staking_address", "dao_address", "rpc_url", "chain_id", "network",
		"pinning.jwt", "pinning.api_key", "pinning.secret_key", "tokenomics_file"} {
		_ = v.BindEnv(key)
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("pinning.api_url", "https://api.pinata.cloud")
	v.SetDefault("pinning.gateway_url", "https://gateway.pinata.cloud")
	v.SetDefault("token_decimals", domain.TokenDecimals)
	v.SetDefault("display_places", 2)
	v.SetDefault("output", "table")
	v.SetDefault("timeout", "5m")
	v.SetDefault("call_timeout", "15s")
	v.SetDefault("poll_interval", "30s")
	v.SetDefault("proposal_start_delay", "0s")
	v.SetDefault("metadata_concurrency", 4)
	v.SetDefault("metadata_cache_size", 256)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)
	v.SetDefault("yes", false)
}

// flagKeys maps persistent flag names to viper keys
var flagKeys = map[string]string{
	"debug":           "debug",
	"non-interactive": "non_interactive",
	"json":            "json",
	"output":          "output",
	"yes":             "yes",
	"network":         "network",
	"rpc-url":         "rpc_url",
	"tokenomics-file": "tokenomics_file",
	"file":            "tokenomics_file",
}

// BindFlags copies flags the user actually set into v
func BindFlags(v *viper.Viper, cmd *cobra.Command) {
	for name, key := range flagKeys {
		if f := cmd.Flag(name); f != nil && f.Changed {
			v.Set(key, f.Value.String())
		}
	}
}
