package localstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyejin/moneybook"
	"github.com/hyejin/moneybook/date"
	"github.com/shopspring/decimal"
)

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), DefaultFile))
	txs, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("Load = %v, want empty", txs)
	}
}

func TestStore_MirrorThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	s := Open(path)

	coffee := moneybook.Transaction{
		Date:           date.MustParse("2024-01-01"),
		Description:    "Coffee",
		Amount:         decimal.NewFromInt(4500),
		Type:           moneybook.Expense,
		Classification: moneybook.Variable,
	}
	created, err := s.Create(coffee)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	if err := s.Mirror([]moneybook.Transaction{created}); err != nil {
		t.Fatalf("Mirror: %v", err)
	}

	// The file now holds exactly the single-element collection.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(raw), `"Coffee"`) || !strings.Contains(string(raw), "4500") {
		t.Errorf("file contents = %s", raw)
	}

	// A fresh store over the same file sees the same data.
	back, err := Open(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(back) != 1 || !back[0].Equal(created) {
		t.Errorf("round trip = %+v, want %+v", back, created)
	}

	got := moneybook.Summarize(back)
	if !got.Expense.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("total expense = %s, want 4500", got.Expense)
	}
	if !got.Balance().Equal(decimal.NewFromInt(-4500)) {
		t.Errorf("balance = %s, want -4500", got.Balance())
	}
}

func TestStore_CreateIDsAreUnique(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), DefaultFile))
	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		tx, err := s.Create(moneybook.Transaction{Description: "x"})
		if err != nil {
			t.Fatal(err)
		}
		if seen[tx.ID] {
			t.Fatalf("duplicate id %d on create %d", tx.ID, i)
		}
		seen[tx.ID] = true
	}
}

func TestStore_MirrorEmptyCollectionWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	s := Open(path)
	if err := s.Mirror(nil); err != nil {
		t.Fatalf("Mirror: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Errorf("file = %q, want empty array", raw)
	}
}
