package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"hela/internal/models"
	"hela/internal/testutil"
)

// newTestManager returns a manager over a simulated provider with near-zero
// delays so tests stay fast.
func newTestManager() *Manager {
	provider := NewSimulatedProvider(time.Millisecond, time.Millisecond, time.Millisecond)
	return NewManager(provider, DefaultCatalog())
}

func TestConnectService(t *testing.T) {
	t.Run("valid_id", func(t *testing.T) {
		m := newTestManager()

		testutil.AssertNoError(t, m.ConnectService(context.Background(), "mpesa"))

		status := m.Status()
		if !status.HasAnyConnection {
			t.Fatal("expected a connection after connect")
		}
		if len(status.ConnectedServices) != 1 {
			t.Fatalf("expected 1 connected service, got %d", len(status.ConnectedServices))
		}
		svc := status.ConnectedServices[0]
		if svc.ID != "mpesa" || svc.Status != models.StatusConnected || !svc.IsConnected {
			t.Errorf("unexpected connected entry: %+v", svc)
		}
		if svc.LastSync == nil {
			t.Error("expected lastSync set on connect")
		}
	})

	t.Run("unknown_id_leaves_state_unchanged", func(t *testing.T) {
		m := newTestManager()

		err := m.ConnectService(context.Background(), "equity_bank")
		testutil.AssertAppError(t, err, "SERVICE_NOT_FOUND")

		status := m.Status()
		if status.HasAnyConnection || len(status.ConnectedServices) != 0 {
			t.Errorf("connected list changed on unknown id: %+v", status.ConnectedServices)
		}
	})

	t.Run("already_connected", func(t *testing.T) {
		m := newTestManager()
		testutil.AssertNoError(t, m.ConnectService(context.Background(), "mpesa"))

		err := m.ConnectService(context.Background(), "mpesa")
		testutil.AssertAppError(t, err, "SERVICE_ALREADY_CONNECTED")

		if got := len(m.Status().ConnectedServices); got != 1 {
			t.Errorf("expected exactly 1 connected entry, got %d", got)
		}
	})

	t.Run("catalog_always_lists_all_services", func(t *testing.T) {
		m := newTestManager()
		testutil.AssertNoError(t, m.ConnectService(context.Background(), "mshwari"))

		status := m.Status()
		if got := len(status.AvailableServices); got != len(DefaultCatalog()) {
			t.Errorf("expected full catalog, got %d entries", got)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		provider := NewSimulatedProvider(time.Second, time.Second, time.Second)
		m := NewManager(provider, DefaultCatalog())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := m.ConnectService(ctx, "mpesa"); err == nil {
			t.Fatal("expected error from cancelled context")
		}
		if m.Status().HasAnyConnection {
			t.Error("cancelled connect must not produce a connected entry")
		}
	})
}

func TestDisconnectService(t *testing.T) {
	t.Run("roundtrip_reconnect", func(t *testing.T) {
		m := newTestManager()
		ctx := context.Background()

		testutil.AssertNoError(t, m.ConnectService(ctx, "kcb_mpesa"))
		testutil.AssertNoError(t, m.DisconnectService(ctx, "kcb_mpesa"))

		if m.Status().HasAnyConnection {
			t.Fatal("expected no connections after disconnect")
		}

		testutil.AssertNoError(t, m.ConnectService(ctx, "kcb_mpesa"))
		status := m.Status()
		if len(status.ConnectedServices) != 1 || status.ConnectedServices[0].ID != "kcb_mpesa" {
			t.Errorf("expected kcb_mpesa reconnected, got %+v", status.ConnectedServices)
		}
	})

	t.Run("not_connected_is_noop", func(t *testing.T) {
		m := newTestManager()
		testutil.AssertNoError(t, m.DisconnectService(context.Background(), "ziidi"))
	})

	t.Run("unknown_id", func(t *testing.T) {
		m := newTestManager()
		err := m.DisconnectService(context.Background(), "paypal")
		testutil.AssertAppError(t, err, "SERVICE_NOT_FOUND")
	})
}

func TestSyncData(t *testing.T) {
	t.Run("refreshes_last_sync_on_all_connected", func(t *testing.T) {
		m := newTestManager()
		ctx := context.Background()

		testutil.AssertNoError(t, m.ConnectService(ctx, "mpesa"))
		testutil.AssertNoError(t, m.ConnectService(ctx, "mshwari"))

		before := make(map[string]time.Time)
		for _, svc := range m.Status().ConnectedServices {
			before[svc.ID] = *svc.LastSync
		}

		time.Sleep(5 * time.Millisecond)
		testutil.AssertNoError(t, m.SyncData(ctx))

		for _, svc := range m.Status().ConnectedServices {
			if svc.LastSync == nil || !svc.LastSync.After(before[svc.ID]) {
				t.Errorf("lastSync not advanced for %s", svc.ID)
			}
			if svc.Status != models.StatusConnected {
				t.Errorf("sync changed connection status for %s: %s", svc.ID, svc.Status)
			}
		}
	})

	t.Run("empty_connected_list_is_noop", func(t *testing.T) {
		m := newTestManager()
		testutil.AssertNoError(t, m.SyncData(context.Background()))
	})
}

func TestSameIDOperationsSerialize(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	// Fire interleaved connect/disconnect pairs at the same id from many
	// goroutines. Per-id serialization must keep the connected list
	// consistent: afterwards the final disconnect leaves it empty.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.ConnectService(ctx, "mpesa")
			_ = m.DisconnectService(ctx, "mpesa")
		}()
	}
	wg.Wait()

	status := m.Status()
	if len(status.ConnectedServices) != 0 {
		t.Errorf("expected empty connected list after paired connect/disconnect, got %+v", status.ConnectedServices)
	}
}

func TestUserData(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	data := m.UserData()
	if data.HasBudget || data.HasTransactions || data.HasSavings || data.HasInvestments {
		t.Errorf("expected empty financial data before any connection: %+v", data)
	}

	testutil.AssertNoError(t, m.ConnectService(ctx, "mpesa"))
	testutil.AssertNoError(t, m.ConnectService(ctx, "ziidi"))

	data = m.UserData()
	if !data.HasTransactions {
		t.Error("mobile money connection should supply transactions")
	}
	if !data.HasInvestments {
		t.Error("investment connection should supply investments")
	}
	if data.HasSavings {
		t.Error("no savings-capable service is connected")
	}
	if !data.HasBudget {
		t.Error("any connection should enable budget data")
	}
	if data.LastSyncDate == nil {
		t.Error("expected a last sync date with connections present")
	}
}
