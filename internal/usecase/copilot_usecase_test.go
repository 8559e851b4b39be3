package usecase

import (
	"context"
	"testing"
	"time"

	"portal-api/internal/copilot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCopilot(t *testing.T) *Copilot {
	t.Helper()
	lib, err := copilot.Load()
	require.NoError(t, err)
	uc := NewCopilotUsecase(lib, nil)
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return uc
}

func TestCopilot_AskAI(t *testing.T) {
	uc := newTestCopilot(t)

	ans, err := uc.AskAI(context.Background(), "tell me about sap ariba")
	require.NoError(t, err)
	assert.Contains(t, ans.Response, "Top AI Use Cases for SAP Ariba")

	ans, err = uc.AskAI(context.Background(), "asdkjfh")
	require.NoError(t, err)
	assert.Contains(t, ans.Response, "AI Solution Consultation")

	_, err = uc.AskAI(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrQueryRequired)
}

func TestCopilot_AskCloud(t *testing.T) {
	uc := newTestCopilot(t)

	ans, err := uc.AskCloud(context.Background(), "Kubernetes platform")
	require.NoError(t, err)
	assert.Contains(t, ans.Response, "Containers and Kubernetes")

	ans, err = uc.AskCloud(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Contains(t, ans.Response, "Cloud Solution Consultation")
}

func TestCopilot_AskIndustry(t *testing.T) {
	uc := newTestCopilot(t)
	ctx := context.Background()

	ans, err := uc.AskIndustry(ctx, "how can AI help our factory", "")
	require.NoError(t, err)
	assert.Equal(t, "manufacturing", ans.Industry)
	require.NotNil(t, ans.Knowledge)
	assert.Contains(t, ans.Knowledge.UseCases, "Predictive maintenance")
	assert.Equal(t, "2025-06-01T00:00:00Z", ans.Timestamp)

	ans, err = uc.AskIndustry(ctx, "how can AI help our factory", "Retail")
	require.NoError(t, err)
	assert.Equal(t, "retail", ans.Industry, "explicit industry wins")
	assert.Contains(t, ans.Response, "Retail Solutions")

	ans, err = uc.AskIndustry(ctx, "hello", "")
	require.NoError(t, err)
	assert.Equal(t, copilot.GeneralIndustry, ans.Industry)
	assert.Contains(t, ans.Response, "Industry Solution Consultation")
	require.NotNil(t, ans.Knowledge)

	ans, err = uc.AskIndustry(ctx, "hello", "Space Mining")
	require.NoError(t, err)
	assert.Equal(t, "space_mining", ans.Industry)
	assert.Contains(t, ans.Response, "Industry Solution Consultation")

	_, err = uc.AskIndustry(ctx, "", "retail")
	assert.ErrorIs(t, err, ErrQueryRequired)
}
