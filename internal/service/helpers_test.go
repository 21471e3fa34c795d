package service

import (
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/medequip-service/internal/auth"
	"github.com/spec-kit/medequip-service/internal/testfixtures"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

type testEnv struct {
	clock  *testfixtures.Clock
	stores *testfixtures.Stores
	events *testfixtures.EventRecorder
	rt     Runtime
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := testfixtures.NewClock(time.Time{})
	recorder := &testfixtures.EventRecorder{}
	return &testEnv{
		clock:  clock,
		stores: testfixtures.NewStores(),
		events: recorder,
		rt: Runtime{
			Now:        clock.Now,
			NewID:      testfixtures.NewIDGenerator("id").Next,
			Dispatcher: recorder,
			Logger:     zaptest.NewLogger(t),
		},
	}
}

func (e *testEnv) authService() *AuthService {
	return NewAuthService(AuthDependencies{
		UserRepo:     e.stores.Users,
		Hasher:       auth.NewBcryptHasher(bcrypt.MinCost),
		TokenManager: auth.NewTokenManager("secret", time.Hour, e.clock.Now),
		Runtime:      e.rt,
	})
}

func (e *testEnv) equipmentService() *EquipmentService {
	return NewEquipmentService(e.stores.Equipment, e.rt)
}

func (e *testEnv) ticketService() *TicketService {
	return NewTicketService(TicketDependencies{
		TicketRepo:    e.stores.Tickets,
		EquipmentRepo: e.stores.Equipment,
		Runtime:       e.rt,
	})
}

func (e *testEnv) maintenanceService() *MaintenanceService {
	return NewMaintenanceService(e.stores.Maintenance, e.stores.Equipment, e.rt)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if !apperrors.IsCode(err, code) {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}
