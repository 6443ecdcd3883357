package assistant

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// failureClass is the small taxonomy remote-call failures are sorted into.
// It only selects fallback copy; it is never surfaced to callers.
type failureClass int

const (
	failureGeneral failureClass = iota
	failureQuota
	failureAuth
	failureServer
)

// classify maps a remote-call error to its failure class. Status codes win;
// message substrings catch transports that lose the code.
func classify(err error) failureClass {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429:
			return failureQuota
		case apiErr.StatusCode == 401:
			return failureAuth
		case apiErr.StatusCode >= 500:
			return failureServer
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "429"):
		return failureQuota
	case strings.Contains(msg, "401") || strings.Contains(msg, "authentication"):
		return failureAuth
	case strings.Contains(msg, "server"):
		return failureServer
	default:
		return failureGeneral
	}
}

// Canned chat responses.
const (
	emptyResponseMessage = "I'm sorry, I couldn't process your request right now. Please try again."
	quotaChatMessage     = "I'm currently experiencing high demand and my AI capabilities are temporarily limited. However, I can still help you with basic financial guidance! What would you like to know about budgeting, saving, or investing in Kenya?"
	genericChatMessage   = "I'm having trouble connecting right now, but I'm here to help with your financial questions! Try asking about budgeting, saving goals, or investment options in Kenya."
)

// keywordReply is one entry of the ordered chat fallback table. The first
// rule whose keywords match the user's message (case-insensitive substring)
// wins.
type keywordReply struct {
	keywords []string
	reply    string
}

var chatFallbacks = []keywordReply{
	{
		keywords: []string{"budget"},
		reply:    "I'd love to help with your budget! While I'm having trouble connecting right now, here's a quick tip: Try the 50/30/20 rule - 50% for needs, 30% for wants, and 20% for savings. What specific budgeting challenge are you facing?",
	},
	{
		keywords: []string{"save", "goal"},
		reply:    "Saving is a great habit! Even starting with Ksh 500 per month can make a big difference. What are you hoping to save for? I can help you create a realistic savings plan.",
	},
	{
		keywords: []string{"invest"},
		reply:    "Investment is key to growing wealth! In Kenya, you might consider starting with government bonds, NSE stocks, or money market funds. What's your risk tolerance and investment timeline?",
	},
}

// chatFallback picks the canned reply for a failed chat call: quota first,
// then keyword rules against the latest user message, then the generic copy.
func chatFallback(class failureClass, latestUserMessage string) string {
	if class == failureQuota {
		return quotaChatMessage
	}

	msg := strings.ToLower(latestUserMessage)
	for _, rule := range chatFallbacks {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.reply
			}
		}
	}
	return genericChatMessage
}

// Insight fallbacks branch on the savings rate with one threshold table;
// the tone flag picks the quota-exceeded or plain wording so the two copies
// can never drift apart on thresholds.
const (
	defaultInsightMessage = "Keep up the great work managing your finances! Every step forward counts."
	quotaNoBudgetInsight  = "🚀 You're taking control of your finances - that's the most important step! Keep tracking your expenses and stay consistent. Remember, even small improvements compound over time!"
	plainNoBudgetInsight  = "You're taking control of your finances - that's the most important step! Keep tracking and stay consistent."
)

type insightTone int

const (
	tonePlain insightTone = iota
	toneQuota
)

// insightForRate renders the fallback insight for a savings rate, expressed
// as a percentage of income.
func insightForRate(rate float64, tone insightTone) string {
	pct := int(math.Round(rate))

	switch {
	case rate >= 20:
		if tone == toneQuota {
			return "🎉 Outstanding! You're saving over 20% of your income - that's excellent financial discipline! Consider exploring investment opportunities like NSE stocks or government bonds to grow your surplus even further."
		}
		return "Excellent! You're saving over 20% of your income. Consider investing some of your surplus for even better returns."
	case rate >= 10:
		if tone == toneQuota {
			return fmt.Sprintf("💪 Great progress! You're saving %d%% of your income. To reach the ideal 20%%, try reducing one small expense category - even Ksh 1,000 less per month makes a difference!", pct)
		}
		return fmt.Sprintf("Good progress! You're saving %d%% of your income. Try to gradually increase this to 20%%.", pct)
	case rate > 0:
		if tone == toneQuota {
			return fmt.Sprintf("🌱 Every shilling saved is a step forward! You're currently saving %d%% of your income. Start small - try saving just Ksh 500 more each month and gradually increase it.", pct)
		}
		return fmt.Sprintf("Every shilling counts! You're saving %d%% of your income. Focus on reducing one expense category to boost your savings rate.", pct)
	default:
		if tone == toneQuota {
			return "💡 Building wealth starts with saving your first shilling! Look at your expenses and identify one area where you can cut back by just Ksh 1,000 this month. Small steps lead to big changes!"
		}
		return "Every journey starts with a single step! Focus on reducing one expense category to start saving."
	}
}

// categoryRule is one entry of the ordered transaction categorizer table.
// Rules are evaluated in order because descriptions can contain several
// keyword families; the first match wins.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{[]string{"supermarket", "grocery", "food", "tuskys", "carrefour", "naivas"}, "Groceries"},
	{[]string{"uber", "taxi", "fuel", "transport", "matatu", "boda"}, "Transport"},
	{[]string{"electricity", "water", "internet", "bill", "kplc", "safaricom"}, "Utilities"},
	{[]string{"movie", "cinema", "entertainment", "netflix", "spotify"}, "Entertainment"},
	{[]string{"hospital", "doctor", "medical", "pharmacy", "clinic"}, "Healthcare"},
	{[]string{"salary", "pay", "wage", "income"}, "Salary"},
	{[]string{"freelance", "side", "gig", "hustle"}, "Side Income"},
	{[]string{"school", "university", "course", "education", "tuition"}, "Education"},
	{[]string{"insurance", "cover", "policy"}, "Insurance"},
	{[]string{"restaurant", "cafe", "dining", "kfc", "pizza"}, "Dining"},
	{[]string{"shop", "store", "mall", "buy"}, "Shopping"},
}

// fallbackCategory categorizes a transaction description without the model.
func fallbackCategory(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return "Other"
}
