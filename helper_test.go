package moneybook

import (
	"time"

	"github.com/hyejin/moneybook/date"
	"github.com/shopspring/decimal"
)

// tx is a helper for tests to build a transaction from consts.
func tx(id int64, day, desc string, amount float64, ty Type, cl Classification) Transaction {
	return Transaction{
		ID:             id,
		Date:           date.MustParse(day),
		Description:    desc,
		Amount:         decimal.NewFromFloat(amount),
		Type:           ty,
		Classification: cl,
	}
}

// fakeBackend is an in-memory Backend whose failures are switchable
// per operation.
type fakeBackend struct {
	txs    []Transaction
	nextID int64

	failCreate   bool
	failCreateAt int
	failUpdate   bool
	failDelete   bool
	failReorder  bool

	createCalls  int
	updateCalls  int
	deleteCalls  int
	reorderCalls int
	mirrored     [][]Transaction
	lastOrder    []int64
	lastPatch    Patch
}

func (b *fakeBackend) Load() ([]Transaction, error) { return b.txs, nil }

func (b *fakeBackend) Create(t Transaction) (Transaction, error) {
	b.createCalls++
	if b.failCreate || (b.failCreateAt > 0 && b.createCalls == b.failCreateAt) {
		return Transaction{}, &RemoteError{Status: 500, Message: "create failed"}
	}
	if b.nextID == 0 {
		b.nextID = time.Now().UnixMilli()
	}
	b.nextID++
	t.ID = b.nextID
	return t, nil
}

func (b *fakeBackend) Update(id int64, p Patch) error {
	b.updateCalls++
	b.lastPatch = p
	if b.failUpdate {
		return &RemoteError{Status: 500, Message: "update failed"}
	}
	return nil
}

func (b *fakeBackend) Delete(id int64) error {
	b.deleteCalls++
	if b.failDelete {
		return &RemoteError{Status: 500, Message: "delete failed"}
	}
	return nil
}

func (b *fakeBackend) Reorder(ids []int64) error {
	b.reorderCalls++
	if b.failReorder {
		return &RemoteError{Status: 500, Message: "reorder failed"}
	}
	b.lastOrder = ids
	return nil
}

func (b *fakeBackend) Mirror(txs []Transaction) error {
	b.mirrored = append(b.mirrored, append([]Transaction(nil), txs...))
	return nil
}

// countingNotifier records every notification.
type countingNotifier struct {
	successes []string
	errors    []string
}

func (n *countingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *countingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
