package integration

import "hela/internal/models"

// DefaultCatalog returns the financial services available to Kenyan users.
// Catalog entries are always listed in full regardless of connection state.
func DefaultCatalog() []models.FinancialService {
	return []models.FinancialService{
		{
			ID:          "mpesa",
			Name:        "M-Pesa",
			Type:        models.ServiceTypeMobileMoney,
			Icon:        "📱",
			Description: "Connect your M-Pesa account to track transactions and spending",
			Status:      models.StatusDisconnected,
		},
		{
			ID:          "ziidi",
			Name:        "Ziidi",
			Type:        models.ServiceTypeInvestment,
			Icon:        "📈",
			Description: "View your investment portfolio and track performance",
			Status:      models.StatusDisconnected,
		},
		{
			ID:          "mshwari",
			Name:        "M-Shwari",
			Type:        models.ServiceTypeSavings,
			Icon:        "🏦",
			Description: "Monitor your M-Shwari savings and loan status",
			Status:      models.StatusDisconnected,
		},
		{
			ID:          "kcb_mpesa",
			Name:        "KCB M-Pesa",
			Type:        models.ServiceTypeBank,
			Icon:        "🏛️",
			Description: "Connect your KCB M-Pesa account for comprehensive banking data",
			Status:      models.StatusDisconnected,
		},
	}
}
