package services

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"portal-service/pkg/common"
)

// AdviceService fetches a one-line financial tip from a hosted
// text-generation model. Any failure, quota exhaustion or empty reply
// falls back to a hardcoded tip pool, so the operation itself never fails.
type AdviceService struct{}

func NewAdviceService() *AdviceService {
	return &AdviceService{}
}

const advicePrompt = "Give a one-sentence encouraging financial investment tip for someone using a trading/investment app called %s. Keep it short and motivating."
const adviceSystemInstruction = "You are a helpful financial assistant for a Bangladeshi mobile banking user."

var staticTips = []string{
	"Consistency is the key to building wealth over time. Start small, dream big!",
	"Your financial future starts with smart choices today. Keep growing!",
	"Billionaires didn't start in a day. Patience and discipline lead to success.",
	"Diversify your investments to manage risk effectively. Don't put all eggs in one basket.",
	"Save first, spend later. That's the secret to long-term financial freedom.",
	"Money works for you when you invest it wisely. Start your journey with brac_trading!",
	"Knowledge is the best investment. Learn about markets while you earn.",
}

// FallbackTip picks one of the static tips uniformly at random.
func (s *AdviceService) FallbackTip() string {
	return staticTips[rand.Intn(len(staticTips))]
}

// GetTip returns a generated tip for the given app name, or a fallback.
func (s *AdviceService) GetTip(appName string) string {
	if appName == "" {
		appName = "brac_trading"
	}

	baseURL := os.Getenv("ADVICE_API_URL")
	apiKey := os.Getenv("ADVICE_API_KEY")
	if baseURL == "" || apiKey == "" {
		return s.FallbackTip()
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": fmt.Sprintf(advicePrompt, appName)}}},
		},
		"systemInstruction": map[string]interface{}{
			"parts": []map[string]string{{"text": adviceSystemInstruction}},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
		},
	}

	resp, err := common.Post(baseURL, payload, map[string]string{"x-goog-api-key": apiKey})
	if err != nil {
		log.Printf("Advice request failed, using fallback: %v", err)
		return s.FallbackTip()
	}

	if tip := extractTip(resp); tip != "" {
		return tip
	}
	return s.FallbackTip()
}

// extractTip digs the first candidate text out of a generateContent reply.
func extractTip(resp interface{}) string {
	root, ok := resp.(map[string]interface{})
	if !ok {
		return ""
	}
	candidates, ok := root["candidates"].([]interface{})
	if !ok || len(candidates) == 0 {
		return ""
	}
	first, ok := candidates[0].(map[string]interface{})
	if !ok {
		return ""
	}
	content, ok := first["content"].(map[string]interface{})
	if !ok {
		return ""
	}
	parts, ok := content["parts"].([]interface{})
	if !ok || len(parts) == 0 {
		return ""
	}
	part, ok := parts[0].(map[string]interface{})
	if !ok {
		return ""
	}
	text, _ := part["text"].(string)
	return strings.TrimSpace(text)
}
