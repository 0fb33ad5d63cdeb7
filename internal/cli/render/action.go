package render

import (
	"fmt"
	"io"

	"github.com/memedao/memedao-cli/internal/domain"
)

// ActionRenderer renders the outcome of a write action
type ActionRenderer struct {
	out         io.Writer
	explorerURL string
}

// NewActionRenderer creates a renderer linking hashes to explorerURL when set
func NewActionRenderer(out io.Writer, explorerURL string) *ActionRenderer {
	return &ActionRenderer{out: out, explorerURL: explorerURL}
}

// Render prints the notice and each submitted transaction
func (r *ActionRenderer) Render(result *domain.ActionResult) error {
	if result.Success {
		fmt.Fprintln(r.out, FormatSuccess(result.Notice))
	} else {
		fmt.Fprintln(r.out, FormatError(result.Notice))
	}

	if result.ApprovalSkipped {
		fmt.Fprintln(r.out, labelStyle.Sprint("   Existing allowance reused, approval skipped"))
	}
	if result.ContentID != "" {
		fmt.Fprintf(r.out, "   %s %s\n", labelStyle.Sprint("Metadata:"), result.ContentID)
	}
	for _, h := range result.Transactions {
		fmt.Fprintf(r.out, "   %s %s\n", labelStyle.Sprint("Tx:"), r.link(h.Hex()))
	}
	return nil
}

func (r *ActionRenderer) link(hash string) string {
	if r.explorerURL == "" {
		return hash
	}
	return r.explorerURL + "/tx/" + hash
}

var _ Renderer[*domain.ActionResult] = (*ActionRenderer)(nil)
