package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/memedao/memedao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerProgress(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	p := newSpinnerProgress(&out)

	p.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageValidating, Message: "Checking balance", Spinner: true})
	p.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageApproving, Message: "Approving $MEME", Spinner: true})
	p.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageConfirming, Message: "Waiting for 0xabc", Spinner: true})
	p.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageConfirming, Message: "Waiting for 0xdef", Spinner: true})

	suffix := p.display()
	assert.Contains(t, suffix, "Approving")
	assert.Contains(t, suffix, "Confirming")
	assert.Contains(t, suffix, "0xdef")
	assert.NotContains(t, suffix, "Validating")

	p.Info("Successfully staked 10 $MEME tokens")
	p.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted, Message: "done"})
	assert.False(t, p.spinner.Active())
	assert.Contains(t, out.String(), "Successfully staked 10 $MEME tokens")

	assert.Equal(t, []string{
		usecase.StageValidating,
		usecase.StageApproving,
		usecase.StageConfirming,
		usecase.StageCompleted,
	}, p.Stages())
}
