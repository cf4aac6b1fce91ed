package assembly

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
)

// Hand-written mocks in moq style: per-method func fields, nil means the
// method is not expected, mutating calls are recorded for assertions.

var _ assemblyRepo = &assemblyRepoMock{}

type assemblyRepoMock struct {
	CreateFunc            func(ctx context.Context, asm *domain.Assembly) (*domain.Assembly, error)
	GetByIDFunc           func(ctx context.Context, userID, assemblyID uuid.UUID) (*domain.Assembly, error)
	GetByIDForUpdateFunc  func(ctx context.Context, userID, assemblyID uuid.UUID) (*domain.Assembly, error)
	ListByUserFunc        func(ctx context.Context, userID uuid.UUID) ([]domain.Assembly, error)
	UpdateRegisterDayFunc func(ctx context.Context, userID, assemblyID uuid.UUID, day time.Time) error
	DeleteFunc            func(ctx context.Context, userID, assemblyID uuid.UUID) error
	GetLinesFunc          func(ctx context.Context, assemblyID uuid.UUID) (map[uuid.UUID]int, error)
	GetLineDetailsFunc    func(ctx context.Context, assemblyID uuid.UUID) ([]domain.AssemblyLineDetail, error)
	UpsertLineFunc        func(ctx context.Context, line domain.AssemblyLine) error
	DeleteLineFunc        func(ctx context.Context, assemblyID, componentID uuid.UUID) error
	DeleteLinesFunc       func(ctx context.Context, assemblyID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Upserts      []domain.AssemblyLine
		LineDeletes  []uuid.UUID
		RegisterDays []time.Time
		Deletes      []uuid.UUID
		LineWipes    []uuid.UUID
	}
}

func (m *assemblyRepoMock) Create(ctx context.Context, asm *domain.Assembly) (*domain.Assembly, error) {
	if m.CreateFunc == nil {
		panic("assemblyRepoMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, asm)
}

func (m *assemblyRepoMock) GetByID(ctx context.Context, userID, assemblyID uuid.UUID) (*domain.Assembly, error) {
	if m.GetByIDFunc == nil {
		panic("assemblyRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, assemblyID)
}

func (m *assemblyRepoMock) GetByIDForUpdate(ctx context.Context, userID, assemblyID uuid.UUID) (*domain.Assembly, error) {
	if m.GetByIDForUpdateFunc == nil {
		panic("assemblyRepoMock.GetByIDForUpdateFunc: method is nil but GetByIDForUpdate was just called")
	}
	return m.GetByIDForUpdateFunc(ctx, userID, assemblyID)
}

func (m *assemblyRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Assembly, error) {
	if m.ListByUserFunc == nil {
		panic("assemblyRepoMock.ListByUserFunc: method is nil but ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *assemblyRepoMock) UpdateRegisterDay(ctx context.Context, userID, assemblyID uuid.UUID, day time.Time) error {
	if m.UpdateRegisterDayFunc == nil {
		panic("assemblyRepoMock.UpdateRegisterDayFunc: method is nil but UpdateRegisterDay was just called")
	}
	m.mu.Lock()
	m.calls.RegisterDays = append(m.calls.RegisterDays, day)
	m.mu.Unlock()
	return m.UpdateRegisterDayFunc(ctx, userID, assemblyID, day)
}

func (m *assemblyRepoMock) Delete(ctx context.Context, userID, assemblyID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("assemblyRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	m.mu.Lock()
	m.calls.Deletes = append(m.calls.Deletes, assemblyID)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, userID, assemblyID)
}

func (m *assemblyRepoMock) GetLines(ctx context.Context, assemblyID uuid.UUID) (map[uuid.UUID]int, error) {
	if m.GetLinesFunc == nil {
		panic("assemblyRepoMock.GetLinesFunc: method is nil but GetLines was just called")
	}
	return m.GetLinesFunc(ctx, assemblyID)
}

func (m *assemblyRepoMock) GetLineDetails(ctx context.Context, assemblyID uuid.UUID) ([]domain.AssemblyLineDetail, error) {
	if m.GetLineDetailsFunc == nil {
		panic("assemblyRepoMock.GetLineDetailsFunc: method is nil but GetLineDetails was just called")
	}
	return m.GetLineDetailsFunc(ctx, assemblyID)
}

func (m *assemblyRepoMock) UpsertLine(ctx context.Context, line domain.AssemblyLine) error {
	if m.UpsertLineFunc == nil {
		panic("assemblyRepoMock.UpsertLineFunc: method is nil but UpsertLine was just called")
	}
	m.mu.Lock()
	m.calls.Upserts = append(m.calls.Upserts, line)
	m.mu.Unlock()
	return m.UpsertLineFunc(ctx, line)
}

func (m *assemblyRepoMock) DeleteLine(ctx context.Context, assemblyID, componentID uuid.UUID) error {
	if m.DeleteLineFunc == nil {
		panic("assemblyRepoMock.DeleteLineFunc: method is nil but DeleteLine was just called")
	}
	m.mu.Lock()
	m.calls.LineDeletes = append(m.calls.LineDeletes, componentID)
	m.mu.Unlock()
	return m.DeleteLineFunc(ctx, assemblyID, componentID)
}

func (m *assemblyRepoMock) DeleteLines(ctx context.Context, assemblyID uuid.UUID) error {
	if m.DeleteLinesFunc == nil {
		panic("assemblyRepoMock.DeleteLinesFunc: method is nil but DeleteLines was just called")
	}
	m.mu.Lock()
	m.calls.LineWipes = append(m.calls.LineWipes, assemblyID)
	m.mu.Unlock()
	return m.DeleteLinesFunc(ctx, assemblyID)
}

func (m *assemblyRepoMock) UpsertCalls() []domain.AssemblyLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Upserts
}

func (m *assemblyRepoMock) LineDeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.LineDeletes
}

func (m *assemblyRepoMock) RegisterDayCalls() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RegisterDays
}

func (m *assemblyRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Deletes
}

func (m *assemblyRepoMock) LineWipeCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.LineWipes
}

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	ListCategoriesFunc     func(ctx context.Context) ([]domain.Category, error)
	ListComponentsFunc     func(ctx context.Context) ([]domain.Component, error)
	GetComponentByIDFunc   func(ctx context.Context, componentID uuid.UUID) (*domain.Component, error)
	GetComponentsByIDsFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Component, error)
}

func (m *catalogRepoMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if m.ListCategoriesFunc == nil {
		panic("catalogRepoMock.ListCategoriesFunc: method is nil but ListCategories was just called")
	}
	return m.ListCategoriesFunc(ctx)
}

func (m *catalogRepoMock) ListComponents(ctx context.Context) ([]domain.Component, error) {
	if m.ListComponentsFunc == nil {
		panic("catalogRepoMock.ListComponentsFunc: method is nil but ListComponents was just called")
	}
	return m.ListComponentsFunc(ctx)
}

func (m *catalogRepoMock) GetComponentByID(ctx context.Context, componentID uuid.UUID) (*domain.Component, error) {
	if m.GetComponentByIDFunc == nil {
		panic("catalogRepoMock.GetComponentByIDFunc: method is nil but GetComponentByID was just called")
	}
	return m.GetComponentByIDFunc(ctx, componentID)
}

func (m *catalogRepoMock) GetComponentsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Component, error) {
	if m.GetComponentsByIDsFunc == nil {
		panic("catalogRepoMock.GetComponentsByIDsFunc: method is nil but GetComponentsByIDs was just called")
	}
	return m.GetComponentsByIDsFunc(ctx, ids)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly; set RunInTxFunc to override.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
