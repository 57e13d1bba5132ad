package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackTip(t *testing.T) {
	svc := NewAdviceService()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tip := svc.FallbackTip()
		assert.NotEmpty(t, tip)
		seen[tip] = true
	}
	// 100 draws from a pool of 7 should hit more than one entry.
	assert.Greater(t, len(seen), 1)
	assert.LessOrEqual(t, len(seen), len(staticTips))
}

func TestGetTipWithoutAPIConfig(t *testing.T) {
	t.Setenv("ADVICE_API_URL", "")
	t.Setenv("ADVICE_API_KEY", "")

	svc := NewAdviceService()
	assert.NotEmpty(t, svc.GetTip("brac_trading"))
	assert.NotEmpty(t, svc.GetTip(""))
}

func TestExtractTip(t *testing.T) {
	resp := map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{
						map[string]interface{}{"text": "  Invest early, win big.  "},
					},
				},
			},
		},
	}
	assert.Equal(t, "Invest early, win big.", extractTip(resp))

	assert.Empty(t, extractTip(nil))
	assert.Empty(t, extractTip(map[string]interface{}{}))
	assert.Empty(t, extractTip(map[string]interface{}{"candidates": []interface{}{}}))
}
