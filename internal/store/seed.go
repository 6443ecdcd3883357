package store

import (
	"time"

	"hela/internal/models"
	"hela/internal/uuid"
)

// NewSeeded creates a store pre-populated with the demo dataset shown to
// first-time users: a sample budget, two savings goals, three bill
// reminders, and a few recent transactions.
func NewSeeded() *Store {
	s := New()
	now := time.Now()

	s.budget = models.Budget{Income: 75000, Expenses: 45000, Leftover: 30000}

	s.goals = []models.Goal{
		{
			ID:            uuid.New(),
			Name:          "Emergency Fund",
			TargetAmount:  150000,
			CurrentAmount: 45000,
			Deadline:      now.AddDate(0, 11, 0),
			Notes:         "Save 6 months of expenses for emergencies",
			Priority:      models.GoalPriorityHigh,
			Status:        models.GoalStatusActive,
			CreatedAt:     now,
		},
		{
			ID:            uuid.New(),
			Name:          "New Laptop",
			TargetAmount:  80000,
			CurrentAmount: 25000,
			Deadline:      now.AddDate(0, 5, 0),
			Notes:         "MacBook Pro for work",
			Priority:      models.GoalPriorityMedium,
			Status:        models.GoalStatusActive,
			CreatedAt:     now,
		},
	}

	rent := now.AddDate(0, 1, 0)
	kplc := now.AddDate(0, 0, 10)
	vacation := now.AddDate(0, 0, 5)
	s.reminders = []models.Reminder{
		{
			ID:                 uuid.New(),
			Title:              "Pay Rent",
			Description:        "Monthly rent payment",
			Frequency:          models.FrequencyMonthly,
			NotificationMethod: models.NotifyBoth,
			DueDate:            rent,
			NextDue:            &rent,
			Status:             models.ReminderStatusActive,
			CreatedAt:          now,
		},
		{
			ID:                 uuid.New(),
			Title:              "Electricity Bill",
			Description:        "KPLC monthly bill",
			Frequency:          models.FrequencyMonthly,
			NotificationMethod: models.NotifyEmail,
			DueDate:            kplc,
			NextDue:            &kplc,
			Status:             models.ReminderStatusActive,
			CreatedAt:          now,
		},
		{
			ID:                 uuid.New(),
			Title:              "Save for Vacation",
			Description:        "Transfer money to vacation savings",
			Frequency:          models.FrequencyWeekly,
			NotificationMethod: models.NotifySMS,
			DueDate:            vacation,
			NextDue:            &vacation,
			Status:             models.ReminderStatusActive,
			CreatedAt:          now,
		},
	}

	// Newest first, matching the transaction log's prepend order.
	s.transactions = []models.Transaction{
		{
			ID:          uuid.New(),
			Type:        models.TransactionTypeExpense,
			Amount:      3500,
			Description: "Groceries",
			Category:    "Food",
			Date:        now.AddDate(0, 0, -2),
			Merchant:    "Naivas",
		},
		{
			ID:          uuid.New(),
			Type:        models.TransactionTypeExpense,
			Amount:      15000,
			Description: "Rent",
			Category:    "Housing",
			Date:        now.AddDate(0, 0, -14),
			Merchant:    "Landlord",
		},
		{
			ID:          uuid.New(),
			Type:        models.TransactionTypeIncome,
			Amount:      75000,
			Description: "Salary",
			Category:    "Salary",
			Date:        now.AddDate(0, 0, -15),
			Merchant:    "Company Ltd",
		},
	}

	return s
}
