package render

import (
	"fmt"
	"io"

	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
)

// RenderWallet prints the session identity and the network it signs for
func RenderWallet(out io.Writer, id domain.Identity, network *config.Network) error {
	rows := [][2]string{{"State", id.State.String()}}
	if id.State == domain.Connected {
		rows = append(rows, [2]string{"Account", addressStyle.Sprint(id.Account.Hex())})
	}
	if network != nil {
		rows = append(rows,
			[2]string{"Network", fmt.Sprintf("%s (chain %d)", network.Name, network.ChainID)},
			[2]string{"RPC", network.RPCURL},
		)
	}
	fmt.Fprintln(out, keyValueTable(rows))
	if id.State != domain.Connected {
		fmt.Fprintln(out)
		fmt.Fprintln(out, FormatWarning("no wallet connected, set MEMEDAO_PRIVATE_KEY to sign transactions"))
	}
	return nil
}
