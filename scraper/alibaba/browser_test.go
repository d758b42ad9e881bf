package alibaba

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alibaba-rfq-scraper/utils"
)

func TestBrowserFetcherMissingBinary(t *testing.T) {
	b := NewBrowserFetcher("/nonexistent/chrome", utils.NewDiscardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := b.Render(ctx, "https://sourcing.alibaba.com/rfq/rfq_search_list.htm")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "browser: launch")
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
}

func TestBrowserFetcherKeepsConfiguredBinary(t *testing.T) {
	b := NewBrowserFetcher("/opt/chrome/chrome", utils.NewDiscardLogger())
	assert.Equal(t, "/opt/chrome/chrome", b.chromeBin)
}

func TestFindChromeBinaryIgnoresEnv(t *testing.T) {
	t.Setenv("CHROME_BIN", "/from/env/chrome")
	assert.NotEqual(t, "/from/env/chrome", findChromeBinary())
}
