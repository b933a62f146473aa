package store_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/meridia-ab/supplier-score-api/internal/domain"
	"github.com/meridia-ab/supplier-score-api/internal/store"
)

func newRun(lineCount int) domain.ImportRun {
	return domain.ImportRun{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		LineCount: lineCount,
	}
}

func supplier(id string, revenue float64) domain.ScoredSupplier {
	return domain.ScoredSupplier{
		AggregatedSupplier: domain.AggregatedSupplier{SupplierID: id, Name: id, TotalRevenue: revenue},
	}
}

func TestMemoryEmpty(t *testing.T) {
	m := store.NewMemory()

	run, suppliers := m.CurrentBatch()
	if run != nil {
		t.Errorf("expected nil run before first import, got %+v", run)
	}
	if len(suppliers) != 0 {
		t.Errorf("expected empty batch, got %d suppliers", len(suppliers))
	}
	if _, ok := m.GetSupplier("S1"); ok {
		t.Error("expected no supplier in empty store")
	}
}

func TestMemoryReplaceBatch(t *testing.T) {
	m := store.NewMemory()

	first := newRun(10)
	m.ReplaceBatch(first, []domain.ScoredSupplier{supplier("S1", 1000), supplier("S2", 500)})

	run, suppliers := m.CurrentBatch()
	if run == nil || run.ID != first.ID {
		t.Fatalf("expected run %s, got %+v", first.ID, run)
	}
	if len(suppliers) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(suppliers))
	}

	// Second import replaces wholesale; S2 disappears.
	second := newRun(5)
	m.ReplaceBatch(second, []domain.ScoredSupplier{supplier("S1", 800), supplier("S3", 300)})

	run, suppliers = m.CurrentBatch()
	if run.ID != second.ID {
		t.Errorf("expected run %s, got %s", second.ID, run.ID)
	}
	if len(suppliers) != 2 {
		t.Fatalf("expected 2 suppliers after replace, got %d", len(suppliers))
	}
	if _, ok := m.GetSupplier("S2"); ok {
		t.Error("S2 must be gone after the replacing import")
	}
	if s, ok := m.GetSupplier("S1"); !ok || s.TotalRevenue != 800 {
		t.Errorf("S1 must carry the new batch values, got %+v ok=%v", s, ok)
	}

	if runs := m.Runs(); len(runs) != 2 {
		t.Errorf("expected 2 retained runs, got %d", len(runs))
	}
}

// TestMemoryAdjustmentsSurviveReplace pins that bonus and factor records live
// independently of the batch lifecycle.
func TestMemoryAdjustmentsSurviveReplace(t *testing.T) {
	m := store.NewMemory()
	m.ReplaceBatch(newRun(1), []domain.ScoredSupplier{supplier("S1", 1000)})

	m.SetBonus(domain.BonusAdjustment{SupplierID: "S1", BonusAmount: 5000})
	m.AddFactor(domain.CustomFactor{ID: uuid.New(), SupplierID: "S1", Name: "Strategic", Value: 1, Weight: 0.5})

	m.ReplaceBatch(newRun(1), []domain.ScoredSupplier{supplier("S1", 2000)})

	if bonus, ok := m.GetBonus("S1"); !ok || bonus.BonusAmount != 5000 {
		t.Errorf("bonus must survive a batch replace, got %+v ok=%v", bonus, ok)
	}
	if factors := m.ListFactors("S1"); len(factors) != 1 {
		t.Errorf("factors must survive a batch replace, got %d", len(factors))
	}
}

func TestMemoryCurrentBatchReturnsCopy(t *testing.T) {
	m := store.NewMemory()
	m.ReplaceBatch(newRun(1), []domain.ScoredSupplier{supplier("S1", 1000)})

	_, suppliers := m.CurrentBatch()
	suppliers[0].TotalRevenue = -1

	if s, _ := m.GetSupplier("S1"); s.TotalRevenue != 1000 {
		t.Errorf("caller mutation leaked into the store: %v", s.TotalRevenue)
	}
}

func TestMemoryPruneRuns(t *testing.T) {
	m := store.NewMemory()
	for i := 0; i < 5; i++ {
		m.ReplaceBatch(newRun(i), nil)
	}

	if removed := m.PruneRuns(10); removed != 0 {
		t.Errorf("nothing to prune below the limit, removed %d", removed)
	}
	if removed := m.PruneRuns(2); removed != 3 {
		t.Errorf("expected 3 runs pruned, got %d", removed)
	}

	runs := m.Runs()
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs left, got %d", len(runs))
	}
	// Oldest runs go first; the survivors are the two newest.
	if runs[0].LineCount != 3 || runs[1].LineCount != 4 {
		t.Errorf("wrong runs survived pruning: %d, %d", runs[0].LineCount, runs[1].LineCount)
	}

	// keep below 1 is treated as 1.
	if removed := m.PruneRuns(0); removed != 1 {
		t.Errorf("expected 1 run pruned with keep 0, got %d", removed)
	}
}

func TestMemoryBonusLifecycle(t *testing.T) {
	m := store.NewMemory()

	if _, ok := m.GetBonus("S1"); ok {
		t.Error("expected no bonus initially")
	}
	if m.ClearBonus("S1") {
		t.Error("clearing a missing bonus must report false")
	}

	m.SetBonus(domain.BonusAdjustment{SupplierID: "S1", BonusAmount: 1000, TenderSupport: 200})
	m.SetBonus(domain.BonusAdjustment{SupplierID: "S1", BonusAmount: 3000})

	bonus, ok := m.GetBonus("S1")
	if !ok || bonus.BonusAmount != 3000 || bonus.TenderSupport != 0 {
		t.Errorf("set must replace the whole record, got %+v", bonus)
	}

	if !m.ClearBonus("S1") {
		t.Error("clearing an existing bonus must report true")
	}
	if _, ok := m.GetBonus("S1"); ok {
		t.Error("bonus must be gone after clear")
	}
}

func TestMemoryFactorLifecycle(t *testing.T) {
	m := store.NewMemory()

	f1 := domain.CustomFactor{ID: uuid.New(), SupplierID: "S1", Name: "First", Value: 1, Weight: 0.5}
	f2 := domain.CustomFactor{ID: uuid.New(), SupplierID: "S1", Name: "Second", Value: -1, Weight: 0.3}
	m.AddFactor(f1)
	m.AddFactor(f2)

	factors := m.ListFactors("S1")
	if len(factors) != 2 {
		t.Fatalf("expected 2 factors, got %d", len(factors))
	}
	if factors[0].Name != "First" || factors[1].Name != "Second" {
		t.Errorf("factors must keep creation order: %s, %s", factors[0].Name, factors[1].Name)
	}

	if m.DeleteFactor("S1", uuid.New()) {
		t.Error("deleting an unknown factor id must report false")
	}
	if !m.DeleteFactor("S1", f1.ID) {
		t.Error("deleting an existing factor must report true")
	}

	factors = m.ListFactors("S1")
	if len(factors) != 1 || factors[0].ID != f2.ID {
		t.Errorf("expected only the second factor left, got %+v", factors)
	}

	if factors := m.ListFactors("UNKNOWN"); len(factors) != 0 {
		t.Errorf("unknown supplier must list no factors, got %d", len(factors))
	}
}

// TestMemoryConcurrentAccess exercises the store from parallel readers and
// writers under the race detector.
func TestMemoryConcurrentAccess(t *testing.T) {
	m := store.NewMemory()
	m.ReplaceBatch(newRun(1), []domain.ScoredSupplier{supplier("S1", 1000)})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("S%d", n)
			m.ReplaceBatch(newRun(n), []domain.ScoredSupplier{supplier(id, float64(n))})
			m.SetBonus(domain.BonusAdjustment{SupplierID: id, BonusAmount: float64(n)})
		}(i)
		go func() {
			defer wg.Done()
			m.CurrentBatch()
			m.GetSupplier("S1")
			m.Runs()
			m.ListFactors("S1")
		}()
	}
	wg.Wait()

	if run, _ := m.CurrentBatch(); run == nil {
		t.Error("expected a current run after concurrent writes")
	}
}
