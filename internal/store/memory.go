// Package store holds the in-process state of the scoring service: the
// latest scored batch, a bounded import-run history, and the adjustment
// records users attach to suppliers. Durable persistence is an external
// collaborator's concern; this store only backs the running process.
package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/meridia-ab/supplier-score-api/internal/domain"
)

// Memory is an in-memory store guarded by a single RWMutex. Reads are
// concurrent; every returned slice is a copy so callers can never observe a
// batch replace mid-iteration.
type Memory struct {
	mu sync.RWMutex

	runs       []domain.ImportRun // oldest first
	currentRun *domain.ImportRun
	current    []domain.ScoredSupplier
	byID       map[string]int // supplier id -> index into current

	factors map[string][]domain.CustomFactor
	bonuses map[string]domain.BonusAdjustment
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{
		byID:    make(map[string]int),
		factors: make(map[string][]domain.CustomFactor),
		bonuses: make(map[string]domain.BonusAdjustment),
	}
}

// ReplaceBatch installs the result of one import run, replacing the previous
// batch wholesale. Adjustment records are kept: they live independently of
// the batch lifecycle and apply to whatever base score exists at read time.
func (m *Memory) ReplaceBatch(run domain.ImportRun, suppliers []domain.ScoredSupplier) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs = append(m.runs, run)
	m.currentRun = &run
	m.current = make([]domain.ScoredSupplier, len(suppliers))
	copy(m.current, suppliers)

	m.byID = make(map[string]int, len(suppliers))
	for i, s := range m.current {
		m.byID[s.SupplierID] = i
	}
}

// CurrentBatch returns the latest run metadata and its scored suppliers in
// classified order. The run is nil before the first import.
func (m *Memory) CurrentBatch() (*domain.ImportRun, []domain.ScoredSupplier) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	suppliers := make([]domain.ScoredSupplier, len(m.current))
	copy(suppliers, m.current)
	if m.currentRun == nil {
		return nil, suppliers
	}
	run := *m.currentRun
	return &run, suppliers
}

// GetSupplier returns one scored supplier from the current batch.
func (m *Memory) GetSupplier(supplierID string) (domain.ScoredSupplier, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byID[supplierID]
	if !ok {
		return domain.ScoredSupplier{}, false
	}
	return m.current[i], true
}

// Runs returns the retained import-run history, oldest first.
func (m *Memory) Runs() []domain.ImportRun {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]domain.ImportRun, len(m.runs))
	copy(runs, m.runs)
	return runs
}

// PruneRuns drops the oldest run records beyond keep and reports how many
// were removed. The current batch itself is never touched.
func (m *Memory) PruneRuns(keep int) int {
	if keep < 1 {
		keep = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	excess := len(m.runs) - keep
	if excess <= 0 {
		return 0
	}
	m.runs = append([]domain.ImportRun(nil), m.runs[excess:]...)
	return excess
}

// SetBonus stores or replaces the bonus adjustment for a supplier.
func (m *Memory) SetBonus(bonus domain.BonusAdjustment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bonuses[bonus.SupplierID] = bonus
}

// GetBonus returns the bonus adjustment for a supplier, if any.
func (m *Memory) GetBonus(supplierID string) (*domain.BonusAdjustment, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bonus, ok := m.bonuses[supplierID]
	if !ok {
		return nil, false
	}
	return &bonus, true
}

// ClearBonus removes the bonus adjustment for a supplier.
func (m *Memory) ClearBonus(supplierID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.bonuses[supplierID]
	delete(m.bonuses, supplierID)
	return ok
}

// AddFactor attaches a custom factor to a supplier.
func (m *Memory) AddFactor(factor domain.CustomFactor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.factors[factor.SupplierID] = append(m.factors[factor.SupplierID], factor)
}

// ListFactors returns the custom factors attached to a supplier in creation
// order.
func (m *Memory) ListFactors(supplierID string) []domain.CustomFactor {
	m.mu.RLock()
	defer m.mu.RUnlock()

	factors := m.factors[supplierID]
	out := make([]domain.CustomFactor, len(factors))
	copy(out, factors)
	return out
}

// DeleteFactor removes one custom factor by id.
func (m *Memory) DeleteFactor(supplierID string, factorID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	factors := m.factors[supplierID]
	for i, f := range factors {
		if f.ID == factorID {
			m.factors[supplierID] = append(factors[:i:i], factors[i+1:]...)
			return true
		}
	}
	return false
}
