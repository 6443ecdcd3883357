package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hela/internal/logger"
	"hela/internal/models"
)

// systemPrompt is the fixed Hela persona sent with every completion.
const systemPrompt = `You are Hela AI, a friendly and knowledgeable financial assistant specifically designed for users in Kenya and Africa. You help with:

1. Personal budgeting and expense tracking
2. Savings goals and financial planning
3. Investment advice suitable for the Kenyan market
4. Bill reminders and financial organization
5. Money-saving tips relevant to Kenya/Africa

Key guidelines:
- Always use Kenyan Shillings (Ksh) for currency
- Provide practical advice relevant to the Kenyan context
- Be encouraging and supportive
- Keep responses concise but helpful
- Suggest actionable steps
- Reference local financial institutions, services, and opportunities when relevant
- Be aware of common Kenyan financial challenges and opportunities

You should be conversational, helpful, and focused on empowering users to take control of their financial lives.`

// categorizerPrompt restricts the model to a closed category vocabulary.
const categorizerPrompt = "You are a financial categorization assistant. Given a transaction description, suggest the most appropriate category from: Groceries, Transport, Utilities, Entertainment, Healthcare, Shopping, Dining, Education, Insurance, Salary, Side Income, Investment Returns, Business, Freelance, Rental, Other. Respond with just the category name."

// FinancialContext is the Domain State snapshot injected into the prompt.
type FinancialContext struct {
	Budget    *models.Budget
	Goals     []models.Goal
	Reminders []models.Reminder
}

// Gateway wraps the remote chat-completion call with context injection,
// failure classification, and deterministic fallbacks. Every method returns
// a usable string on every code path.
type Gateway struct {
	client ChatClient
	now    func() time.Time
}

// NewGateway creates a gateway over the given chat client.
func NewGateway(client ChatClient) *Gateway {
	return &Gateway{client: client, now: time.Now}
}

// buildContextualPrompt appends a compact summary of the user's finances to
// the persona prompt: the budget line, active goals with progress amounts,
// and any active reminder already past due.
func (g *Gateway) buildContextualPrompt(fctx *FinancialContext) string {
	if fctx == nil {
		return systemPrompt
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nCurrent user financial context:\n")

	if fctx.Budget != nil {
		fmt.Fprintf(&b, "Budget: Income Ksh %.0f, Expenses Ksh %.0f, Leftover Ksh %.0f\n",
			fctx.Budget.Income, fctx.Budget.Expenses, fctx.Budget.Leftover)
	}

	var goalParts []string
	for _, goal := range fctx.Goals {
		if goal.Status != models.GoalStatusActive {
			continue
		}
		goalParts = append(goalParts, fmt.Sprintf("%s (Ksh %.0f/%.0f)", goal.Name, goal.CurrentAmount, goal.TargetAmount))
	}
	if len(goalParts) > 0 {
		fmt.Fprintf(&b, "Active Goals: %s\n", strings.Join(goalParts, ", "))
	}

	now := g.now()
	var overdue []string
	for _, r := range fctx.Reminders {
		if r.Status == models.ReminderStatusActive && r.EffectiveDue().Before(now) {
			overdue = append(overdue, r.Title)
		}
	}
	if len(overdue) > 0 {
		fmt.Fprintf(&b, "Overdue reminders: %s\n", strings.Join(overdue, ", "))
	}

	return b.String()
}

// latestUserMessage returns the content of the most recent user message.
func latestUserMessage(messages []models.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

// ChatResponse answers the user's latest message given the conversation so
// far. Remote failures are classified and recovered into canned replies;
// this method never returns an error.
func (g *Gateway) ChatResponse(ctx context.Context, messages []models.ChatMessage, fctx *FinancialContext) string {
	request := make([]Message, 0, len(messages)+1)
	request = append(request, Message{Role: string(models.RoleSystem), Content: g.buildContextualPrompt(fctx)})
	for _, m := range messages {
		request = append(request, Message{Role: string(m.Role), Content: m.Content})
	}

	reply, err := g.client.Complete(ctx, request, CompletionOptions{MaxTokens: 500, Temperature: 0.7})
	if err == nil {
		if reply == "" {
			return emptyResponseMessage
		}
		return reply
	}

	class := classify(err)
	logger.Get().Warnw("chat completion failed, using fallback",
		"class", class,
		"error", err.Error(),
	)
	return chatFallback(class, latestUserMessage(messages))
}

// FinancialInsight asks for one short insight and tip based on the user's
// data. On failure the insight falls back to a savings-rate template.
func (g *Gateway) FinancialInsight(ctx context.Context, fctx *FinancialContext) string {
	var income, expenses, leftover float64
	var goals, reminders int
	if fctx != nil {
		if fctx.Budget != nil {
			income = fctx.Budget.Income
			expenses = fctx.Budget.Expenses
			leftover = fctx.Budget.Leftover
		}
		goals = len(fctx.Goals)
		for _, r := range fctx.Reminders {
			if r.Status == models.ReminderStatusActive {
				reminders++
			}
		}
	}

	prompt := fmt.Sprintf(`Based on this financial data, provide a brief, encouraging insight and one actionable tip:

Budget: Income Ksh %.0f, Expenses Ksh %.0f, Leftover Ksh %.0f
Goals: %d active goals
Reminders: %d active reminders

Keep it under 100 words and focus on one key improvement.`, income, expenses, leftover, goals, reminders)

	reply, err := g.client.Complete(ctx, []Message{
		{Role: string(models.RoleSystem), Content: systemPrompt},
		{Role: string(models.RoleUser), Content: prompt},
	}, CompletionOptions{MaxTokens: 150, Temperature: 0.7})
	if err == nil {
		if reply == "" {
			return defaultInsightMessage
		}
		return reply
	}

	tone := tonePlain
	if classify(err) == failureQuota {
		tone = toneQuota
	}
	logger.Get().Warnw("insight completion failed, using fallback", "error", err.Error())

	if fctx != nil && fctx.Budget != nil && fctx.Budget.Income > 0 {
		rate := fctx.Budget.Leftover / fctx.Budget.Income * 100
		return insightForRate(rate, tone)
	}
	if tone == toneQuota {
		return quotaNoBudgetInsight
	}
	return plainNoBudgetInsight
}

// SuggestCategory picks a category for a transaction description from the
// closed vocabulary, falling back to keyword rules when the model is
// unavailable.
func (g *Gateway) SuggestCategory(ctx context.Context, description string) string {
	reply, err := g.client.Complete(ctx, []Message{
		{Role: string(models.RoleSystem), Content: categorizerPrompt},
		{Role: string(models.RoleUser), Content: fmt.Sprintf("Categorize this transaction: %q", description)},
	}, CompletionOptions{MaxTokens: 20, Temperature: 0.3})
	if err == nil {
		if category := strings.TrimSpace(reply); category != "" {
			return category
		}
		return "Other"
	}

	logger.Get().Warnw("categorize completion failed, using fallback", "error", err.Error())
	return fallbackCategory(description)
}
