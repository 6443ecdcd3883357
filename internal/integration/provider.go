// Package integration models the lifecycle of a user's links to external
// financial services (mobile money, bank, savings, investment) as a
// client-visible state machine. The transport is abstracted behind the
// Provider interface; the default implementation simulates the remote calls
// with fixed delays and no real I/O.
package integration

import (
	"context"
	"time"
)

// Connection is the result of a successful account link.
type Connection struct {
	ServiceID string
	LinkedAt  time.Time
}

// SyncReport describes the outcome of a data sync across connected services.
type SyncReport struct {
	SyncedIDs   []string
	CompletedAt time.Time
}

// Provider is the external account boundary. Implementations must honor
// context cancellation; all methods block for the duration of the
// (possibly simulated) remote round trip.
type Provider interface {
	Connect(ctx context.Context, serviceID string) (Connection, error)
	Disconnect(ctx context.Context, serviceID string) error
	Sync(ctx context.Context, serviceIDs []string) (SyncReport, error)
}

// SimulatedProvider stands in for real service integrations. Every call
// succeeds after its configured delay.
type SimulatedProvider struct {
	ConnectDelay    time.Duration
	DisconnectDelay time.Duration
	SyncDelay       time.Duration
}

// NewSimulatedProvider creates a provider with the given fixed delays.
func NewSimulatedProvider(connect, disconnect, sync time.Duration) *SimulatedProvider {
	return &SimulatedProvider{
		ConnectDelay:    connect,
		DisconnectDelay: disconnect,
		SyncDelay:       sync,
	}
}

// Connect simulates linking an external account.
func (p *SimulatedProvider) Connect(ctx context.Context, serviceID string) (Connection, error) {
	if err := sleep(ctx, p.ConnectDelay); err != nil {
		return Connection{}, err
	}
	return Connection{ServiceID: serviceID, LinkedAt: time.Now()}, nil
}

// Disconnect simulates unlinking an external account.
func (p *SimulatedProvider) Disconnect(ctx context.Context, serviceID string) error {
	return sleep(ctx, p.DisconnectDelay)
}

// Sync simulates refreshing data from all given services.
func (p *SimulatedProvider) Sync(ctx context.Context, serviceIDs []string) (SyncReport, error) {
	if err := sleep(ctx, p.SyncDelay); err != nil {
		return SyncReport{}, err
	}
	return SyncReport{SyncedIDs: serviceIDs, CompletedAt: time.Now()}, nil
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
