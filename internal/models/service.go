package models

import "time"

// ServiceType represents the kind of external financial service
type ServiceType string

const (
	ServiceTypeMobileMoney ServiceType = "mobile_money"
	ServiceTypeSavings     ServiceType = "savings"
	ServiceTypeInvestment  ServiceType = "investment"
	ServiceTypeBank        ServiceType = "bank"
)

// ServiceStatus represents the connection status of a financial service
type ServiceStatus string

const (
	StatusConnected    ServiceStatus = "connected"
	StatusDisconnected ServiceStatus = "disconnected"
	StatusConnecting   ServiceStatus = "connecting"
	StatusSyncing      ServiceStatus = "syncing"
	StatusError        ServiceStatus = "error"
)

// FinancialService describes an external financial account a user can link.
// Catalog entries carry IsConnected=false and no LastSync; connected entries
// are copies with the connection fields populated.
type FinancialService struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        ServiceType   `json:"type"`
	Icon        string        `json:"icon"`
	Description string        `json:"description"`
	IsConnected bool          `json:"is_connected"`
	Status      ServiceStatus `json:"status"`
	LastSync    *time.Time    `json:"last_sync,omitempty"`
}

// IntegrationStatus is the derived view of the integration state machine.
// AvailableServices always lists the full catalog regardless of connection
// state; readers union the two lists by id.
type IntegrationStatus struct {
	HasAnyConnection  bool               `json:"has_any_connection"`
	ConnectedServices []FinancialService `json:"connected_services"`
	AvailableServices []FinancialService `json:"available_services"`
}

// UserFinancialData summarizes which data classes the user's connected
// services can supply.
type UserFinancialData struct {
	HasTransactions bool       `json:"has_transactions"`
	HasSavings      bool       `json:"has_savings"`
	HasInvestments  bool       `json:"has_investments"`
	HasBudget       bool       `json:"has_budget"`
	LastSyncDate    *time.Time `json:"last_sync_date,omitempty"`
}
