package adapters

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/wire"
	"github.com/memedao/memedao-cli/internal/adapters/blockchain"
	"github.com/memedao/memedao-cli/internal/adapters/fs"
	"github.com/memedao/memedao-cli/internal/adapters/interactive"
	"github.com/memedao/memedao-cli/internal/adapters/pinning"
	"github.com/memedao/memedao-cli/internal/adapters/wallet"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/memedao/memedao-cli/internal/usecase"
)

// ProvideEthClient dials the configured RPC endpoint. The returned cleanup
// closes the connection.
func ProvideEthClient(cfg *config.RuntimeConfig, log *slog.Logger) (*ethclient.Client, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.CallTimeout)
	defer cancel()

	client, err := blockchain.Dial(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("connected to rpc", "network", cfg.Network.Name, "chain_id", cfg.Network.ChainID)
	return client, client.Close, nil
}

// BlockchainSet provides the contract client for every chain port
var BlockchainSet = wire.NewSet(
	ProvideEthClient,
	wire.Bind(new(blockchain.Backend), new(*ethclient.Client)),
	wire.Bind(new(wallet.Transactor), new(*ethclient.Client)),

	blockchain.NewClient,
	wire.Bind(new(usecase.DAOReader), new(*blockchain.Client)),
	wire.Bind(new(usecase.StakingReader), new(*blockchain.Client)),
	wire.Bind(new(usecase.TokenReader), new(*blockchain.Client)),
	wire.Bind(new(usecase.TxBuilder), new(*blockchain.Client)),
	wire.Bind(new(usecase.TransactionWaiter), new(*blockchain.Client)),
)

// WalletSet provides the signing session
var WalletSet = wire.NewSet(
	wallet.NewSession,
	wire.Bind(new(usecase.Session), new(*wallet.Session)),
	wire.Bind(new(usecase.SignerProvider), new(*wallet.Session)),
)

// PinningSet provides the proposal metadata store
var PinningSet = wire.NewSet(
	pinning.NewClient,
	wire.Bind(new(usecase.MetadataStore), new(*pinning.Client)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewTokenomicsStore,
	wire.Bind(new(usecase.TokenomicsSource), new(*fs.TokenomicsStore)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ProposalSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	WalletSet,
	PinningSet,
	FSSet,
	InteractiveSet,
)
