// Package learn serves the static financial-literacy content library.
package learn

import (
	apperrors "hela/internal/errors"
)

// ModuleType distinguishes content formats.
type ModuleType string

const (
	TypeVideo   ModuleType = "video"
	TypeArticle ModuleType = "article"
	TypeGuide   ModuleType = "guide"
)

// Difficulty grades a module's target audience.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Module is one entry of the content library.
type Module struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        ModuleType `json:"type"`
	Category    string     `json:"category"`
	URL         string     `json:"url"`
	Duration    string     `json:"duration,omitempty"`
	IsPremium   bool       `json:"is_premium"`
	Featured    bool       `json:"featured,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
}

// Category is a browsable grouping of modules.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categories returns the browsable content categories.
func Categories() []Category {
	return []Category{
		{ID: "all", Name: "All Resources"},
		{ID: "budgeting", Name: "Budgeting"},
		{ID: "earning", Name: "Earning Online"},
		{ID: "investing", Name: "Investing"},
		{ID: "business", Name: "Starting a Business"},
	}
}

var catalog = []Module{
	{
		ID:          "1",
		Title:       "How to Budget in Kenya for Beginners",
		Description: "Complete guide to creating your first budget with Kenyan examples and local bank integration.",
		Type:        TypeVideo,
		Category:    "budgeting",
		URL:         "https://youtube.com/watch?v=example1",
		Duration:    "15 min",
		Featured:    true,
		Difficulty:  DifficultyBeginner,
	},
	{
		ID:          "2",
		Title:       "Top 5 Digital Hustles in Kenya 2025",
		Description: "Discover the most profitable online opportunities for Kenyans, from freelancing to e-commerce.",
		Type:        TypeArticle,
		Category:    "earning",
		URL:         "https://example.com/digital-hustles",
		Featured:    true,
		Difficulty:  DifficultyBeginner,
	},
	{
		ID:          "3",
		Title:       "AI & Business Growth for African Entrepreneurs",
		Description: "How African entrepreneurs are leveraging AI tools to scale their businesses faster.",
		Type:        TypeGuide,
		Category:    "business",
		URL:         "https://example.com/ai-business",
		IsPremium:   true,
		Featured:    true,
		Difficulty:  DifficultyAdvanced,
	},
	{
		ID:          "4",
		Title:       "Emergency Fund Calculator for Kenya",
		Description: "Calculate how much you need in your emergency fund based on Kenyan living costs.",
		Type:        TypeGuide,
		Category:    "budgeting",
		URL:         "https://example.com/emergency-fund",
		Difficulty:  DifficultyBeginner,
	},
	{
		ID:          "5",
		Title:       "Investing in NSE: Beginner's Guide",
		Description: "Step-by-step guide to start investing in the Nairobi Securities Exchange.",
		Type:        TypeVideo,
		Category:    "investing",
		URL:         "https://youtube.com/watch?v=example2",
		Duration:    "25 min",
		IsPremium:   true,
		Difficulty:  DifficultyIntermediate,
	},
	{
		ID:          "6",
		Title:       "M-Pesa Business: Complete Setup Guide",
		Description: "How to start and grow an M-Pesa business in Kenya with real profit calculations.",
		Type:        TypeArticle,
		Category:    "business",
		URL:         "https://example.com/mpesa-business",
		IsPremium:   true,
		Difficulty:  DifficultyIntermediate,
	},
	{
		ID:          "7",
		Title:       "Side Hustles That Pay in USD",
		Description: "Remote work opportunities that pay in foreign currency for Kenyan professionals.",
		Type:        TypeArticle,
		Category:    "earning",
		URL:         "https://example.com/usd-hustles",
		IsPremium:   true,
		Difficulty:  DifficultyIntermediate,
	},
	{
		ID:          "8",
		Title:       "Retirement Planning in Your 20s",
		Description: "Why starting early matters and how to build wealth for retirement in Kenya.",
		Type:        TypeGuide,
		Category:    "investing",
		URL:         "https://example.com/retirement-20s",
		Difficulty:  DifficultyBeginner,
	},
}

// Modules returns the full catalog, optionally filtered by category.
// Passing "" or "all" returns everything.
func Modules(category string) []Module {
	if category == "" || category == "all" {
		out := make([]Module, len(catalog))
		copy(out, catalog)
		return out
	}

	var out []Module
	for _, m := range catalog {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// ModuleByID returns a single module.
func ModuleByID(id string) (Module, error) {
	for _, m := range catalog {
		if m.ID == id {
			return m, nil
		}
	}
	return Module{}, apperrors.ErrModuleNotFound
}
