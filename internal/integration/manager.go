package integration

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	apperrors "hela/internal/errors"
	"hela/internal/models"
)

// Manager owns the per-service connection state. Operations targeting the
// same service id serialize through a per-id lock; operations on different
// ids run concurrently.
type Manager struct {
	provider Provider

	mu        sync.Mutex
	catalog   []models.FinancialService
	connected []models.FinancialService
	transient map[string]models.ServiceStatus

	locks    map[string]*sync.Mutex
	locksMu  sync.Mutex
	inFlight atomic.Int32
}

// NewManager creates a manager over the given provider and service catalog.
func NewManager(provider Provider, catalog []models.FinancialService) *Manager {
	return &Manager{
		provider:  provider,
		catalog:   catalog,
		transient: make(map[string]models.ServiceStatus),
		locks:     make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing operations for one service id.
func (m *Manager) lockFor(id string) *sync.Mutex {
	m.locksMu.Lock()
	defer m.locksMu.Unlock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	return l
}

func (m *Manager) catalogEntry(id string) (models.FinancialService, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, svc := range m.catalog {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.FinancialService{}, false
}

func (m *Manager) isConnected(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, svc := range m.connected {
		if svc.ID == id {
			return true
		}
	}
	return false
}

func (m *Manager) setTransient(id string, status models.ServiceStatus) {
	m.mu.Lock()
	m.transient[id] = status
	m.mu.Unlock()
}

func (m *Manager) clearTransient(id string) {
	m.mu.Lock()
	delete(m.transient, id)
	m.mu.Unlock()
}

// ConnectService links the given catalog service. Unknown ids return
// ErrServiceNotFound; connecting an already-connected service returns
// ErrServiceConnected. The call blocks for the provider round trip.
func (m *Manager) ConnectService(ctx context.Context, id string) error {
	entry, ok := m.catalogEntry(id)
	if !ok {
		return apperrors.ErrServiceNotFound
	}

	lock := m.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	if m.isConnected(id) {
		return apperrors.ErrServiceConnected
	}

	m.inFlight.Add(1)
	defer m.inFlight.Add(-1)

	m.setTransient(id, models.StatusConnecting)
	defer m.clearTransient(id)

	conn, err := m.provider.Connect(ctx, id)
	if err != nil {
		m.setTransient(id, models.StatusError)
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entry.IsConnected = true
	entry.Status = models.StatusConnected
	linked := conn.LinkedAt
	entry.LastSync = &linked

	m.mu.Lock()
	m.connected = append(m.connected, entry)
	m.mu.Unlock()
	return nil
}

// DisconnectService unlinks a service. Unknown catalog ids return
// ErrServiceNotFound; disconnecting a service that is not connected is a
// no-op. The entry is removed regardless of its current status.
func (m *Manager) DisconnectService(ctx context.Context, id string) error {
	if _, ok := m.catalogEntry(id); !ok {
		return apperrors.ErrServiceNotFound
	}

	lock := m.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	m.inFlight.Add(1)
	defer m.inFlight.Add(-1)

	if err := m.provider.Disconnect(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	m.mu.Lock()
	for i := range m.connected {
		if m.connected[i].ID == id {
			m.connected = append(m.connected[:i], m.connected[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	return nil
}

// SyncData refreshes the last-sync timestamp on every connected service.
// Connection status is unchanged; an empty connected list is a no-op.
func (m *Manager) SyncData(ctx context.Context) error {
	m.mu.Lock()
	ids := make([]string, len(m.connected))
	for i, svc := range m.connected {
		ids[i] = svc.ID
	}
	m.mu.Unlock()

	if len(ids) == 0 {
		return nil
	}

	m.inFlight.Add(1)
	defer m.inFlight.Add(-1)

	for _, id := range ids {
		m.setTransient(id, models.StatusSyncing)
	}
	defer func() {
		for _, id := range ids {
			m.clearTransient(id)
		}
	}()

	report, err := m.provider.Sync(ctx, ids)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	synced := report.CompletedAt
	if synced.IsZero() {
		synced = time.Now()
	}

	m.mu.Lock()
	for i := range m.connected {
		at := synced
		m.connected[i].LastSync = &at
	}
	m.mu.Unlock()
	return nil
}

// IsLoading reports whether any connect, disconnect, or sync operation is
// currently in flight.
func (m *Manager) IsLoading() bool {
	return m.inFlight.Load() > 0
}

// Status returns the derived integration view: the connected list and the
// full catalog with transient statuses (connecting, syncing, error)
// overlaid so readers can render per-service state.
func (m *Manager) Status() models.IntegrationStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	connected := make([]models.FinancialService, len(m.connected))
	copy(connected, m.connected)

	available := make([]models.FinancialService, len(m.catalog))
	copy(available, m.catalog)
	for i := range available {
		if status, ok := m.transient[available[i].ID]; ok {
			available[i].Status = status
			continue
		}
		for _, svc := range m.connected {
			if svc.ID == available[i].ID {
				available[i].IsConnected = true
				available[i].Status = models.StatusConnected
				available[i].LastSync = svc.LastSync
				break
			}
		}
	}

	return models.IntegrationStatus{
		HasAnyConnection:  len(connected) > 0,
		ConnectedServices: connected,
		AvailableServices: available,
	}
}

// UserData summarizes which data classes the connected services supply.
func (m *Manager) UserData() models.UserFinancialData {
	m.mu.Lock()
	defer m.mu.Unlock()

	data := models.UserFinancialData{HasBudget: len(m.connected) > 0}
	for _, svc := range m.connected {
		switch svc.Type {
		case models.ServiceTypeMobileMoney:
			data.HasTransactions = true
		case models.ServiceTypeBank:
			data.HasTransactions = true
			data.HasSavings = true
		case models.ServiceTypeSavings:
			data.HasSavings = true
		case models.ServiceTypeInvestment:
			data.HasInvestments = true
		}
		if svc.LastSync != nil && (data.LastSyncDate == nil || svc.LastSync.After(*data.LastSyncDate)) {
			data.LastSyncDate = svc.LastSync
		}
	}
	return data
}
