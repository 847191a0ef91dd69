package moneybook

import (
	"log"
	"slices"
	"strings"

	"github.com/hyejin/moneybook/date"
	"github.com/shopspring/decimal"
)

// Store owns the authoritative in-memory collection of transactions
// for the current session, together with the transient entry-form,
// edit-buffer and pending-delete state. All mutations go through its
// operations; no caller mutates the collection directly.
//
// Operations that persist remotely follow idle → optimistically-applied
// → confirmed or rolled-back. Only reorder is optimistic: it shows the
// new order immediately and restores the exact pre-mutation snapshot
// if persistence fails. Add, edit and delete mutate only after the
// backend confirms. Outcomes are applied atomically in call order, so
// concurrent readers never observe a partial update; overlapping
// in-flight mutations resolve last-writer-wins.
type Store struct {
	backend  Backend
	notifier Notifier

	transactions []Transaction

	// Entry-form state. The raw amount survives failed submissions and
	// is cleared on a successful add, as the original form field was.
	amount string

	// Edit buffer. At most one transaction is being edited at a time;
	// starting a new edit replaces the buffer wholesale.
	editingID          int64
	editDescription    string
	editType           Type
	editClassification Classification

	// Pending delete. The id is only actioned by an explicit
	// DeleteTransaction call while the confirmation is open.
	deletingID int64
	modalOpen  bool
}

// NewStore returns a Store bound to a backend. A nil notifier falls
// back to the standard logger.
func NewStore(b Backend, n Notifier) *Store {
	if n == nil {
		n = LogNotifier{}
	}
	return &Store{backend: b, notifier: n}
}

// Transactions returns the authoritative collection. Callers must not
// mutate it.
func (s *Store) Transactions() []Transaction { return s.transactions }

// Replace adopts a whole new collection, discarding the previous one.
// It is called on every authentication change so anonymous and
// authenticated data never merge.
func (s *Store) Replace(txs []Transaction) {
	s.transactions = txs
}

// SetBackend swaps the persistence backend. Called once per
// authentication change, followed by a Reload.
func (s *Store) SetBackend(b Backend) { s.backend = b }

// Reload replaces the collection with whatever the backend holds.
func (s *Store) Reload() error {
	txs, err := s.backend.Load()
	if err != nil {
		return err
	}
	s.Replace(txs)
	return nil
}

// SetAmount records the raw entry-form amount field.
func (s *Store) SetAmount(v string) { s.amount = v }

// Amount returns the raw entry-form amount field.
func (s *Store) Amount() string { return s.amount }

// Form carries the entry-form fields of an add gesture. The amount is
// taken from the store's amount field.
type Form struct {
	Date           date.Date
	Description    string
	Type           Type
	Classification Classification
}

// Add validates the form and creates a new transaction at the front of
// the collection. Invalid input surfaces exactly one notification and
// mutates nothing. The collection is only mutated once the backend has
// assigned an id, so a failed create leaves no trace.
func (s *Store) Add(f Form) error {
	amt, aerr := decimal.NewFromString(strings.TrimSpace(s.amount))
	if strings.TrimSpace(f.Description) == "" || aerr != nil || !amt.IsPositive() {
		s.notifier.Error("Description and amount are required.")
		return errValidation("description and a positive amount are required")
	}

	tx := Transaction{
		// Provisional id until the backend assigns one.
		ID:             0,
		Date:           f.Date,
		Description:    f.Description,
		Amount:         amt,
		Type:           f.Type,
		Classification: f.Classification,
	}
	if tx.Date.IsZero() {
		tx.Date = date.Today()
	}
	if err := tx.Validate(); err != nil {
		s.notifier.Error(err.Error())
		return err
	}

	created, err := s.backend.Create(tx)
	if err != nil {
		s.notifier.Error("Failed to add transaction.")
		return err
	}

	s.transactions = append([]Transaction{created}, s.transactions...)
	s.amount = ""
	s.mirror()
	s.notifier.Success("Transaction added successfully!")
	return nil
}

// StartEditing snapshots the editable fields of a transaction into the
// edit buffer and marks it as being edited.
func (s *Store) StartEditing(t Transaction) {
	s.editingID = t.ID
	s.editDescription = t.Description
	s.editType = t.Type
	s.editClassification = t.Classification
}

// CancelEditing clears the edit buffer without touching the collection.
func (s *Store) CancelEditing() {
	s.editingID = 0
	s.editDescription = ""
	s.editType = ""
	s.editClassification = ""
}

// EditingID returns the id being edited, or 0.
func (s *Store) EditingID() int64 { return s.editingID }

// SetEditDescription updates the edit buffer description.
func (s *Store) SetEditDescription(v string) { s.editDescription = v }

// SetEditType updates the edit buffer type.
func (s *Store) SetEditType(t Type) { s.editType = t }

// SetEditClassification updates the edit buffer classification.
func (s *Store) SetEditClassification(c Classification) { s.editClassification = c }

// UpdateTransaction commits the edit buffer: it persists the changed
// fields, merges them into the matching in-memory record (preserving
// fields outside the edit), and clears the buffer. All edited fields
// must be non-empty.
func (s *Store) UpdateTransaction() error {
	if s.editingID == 0 || s.editDescription == "" || s.editType == "" || s.editClassification == "" {
		s.notifier.Error("Description, type and classification are required.")
		return errValidation("incomplete edit")
	}

	p := Patch{
		Description:    &s.editDescription,
		Type:           &s.editType,
		Classification: &s.editClassification,
	}
	if err := s.backend.Update(s.editingID, p); err != nil {
		s.notifier.Error("Failed to update transaction.")
		return err
	}

	for i := range s.transactions {
		if s.transactions[i].ID == s.editingID {
			p.apply(&s.transactions[i])
			break
		}
	}
	s.CancelEditing()
	s.mirror()
	s.notifier.Success("Transaction updated successfully!")
	return nil
}

// OpenDeleteModal records a pending-delete id and opens the
// confirmation prompt.
func (s *Store) OpenDeleteModal(id int64) {
	s.deletingID = id
	s.modalOpen = true
}

// CloseDeleteModal clears the pending delete without mutation.
func (s *Store) CloseDeleteModal() {
	s.deletingID = 0
	s.modalOpen = false
}

// DeleteModalOpen reports whether a delete confirmation is pending.
func (s *Store) DeleteModalOpen() bool { return s.modalOpen }

// PendingDelete returns the id awaiting confirmation, or 0.
func (s *Store) PendingDelete() int64 { return s.deletingID }

// DeleteTransaction removes the pending-delete transaction. It must
// only be invoked from the explicit confirmation; with no pending id
// it is a no-op.
func (s *Store) DeleteTransaction() error {
	if s.deletingID == 0 {
		return nil
	}
	if err := s.backend.Delete(s.deletingID); err != nil {
		s.notifier.Error("Failed to delete transaction.")
		return err
	}

	id := s.deletingID
	s.transactions = slices.DeleteFunc(s.transactions, func(t Transaction) bool {
		return t.ID == id
	})
	s.CloseDeleteModal()
	s.mirror()
	s.notifier.Success("Transaction deleted successfully!")
	return nil
}

// Move reorders the collection by moving one transaction to the
// position currently held by another, the intent yielded by a drag
// gesture.
func (s *Store) Move(movedID, targetID int64) error {
	from := slices.IndexFunc(s.transactions, func(t Transaction) bool { return t.ID == movedID })
	to := slices.IndexFunc(s.transactions, func(t Transaction) bool { return t.ID == targetID })
	if from < 0 || to < 0 {
		s.notifier.Error("Failed to update order.")
		return errValidation("unknown transaction id")
	}
	if from == to {
		return nil
	}

	ordered := slices.Clone(s.transactions)
	moved := ordered[from]
	ordered = slices.Delete(ordered, from, from+1)
	ordered = slices.Insert(ordered, to, moved)
	return s.ApplyOrder(ordered)
}

// ApplyOrder adopts an externally supplied replacement ordering. The
// new order must be a permutation of the current collection. It is
// applied optimistically, then persisted; on failure the exact
// pre-mutation snapshot is restored.
func (s *Store) ApplyOrder(ordered []Transaction) error {
	if !isPermutation(s.transactions, ordered) {
		s.notifier.Error("Failed to update order.")
		return errValidation("new order is not a permutation of the collection")
	}

	prev := s.transactions
	s.transactions = ordered

	ids := make([]int64, len(ordered))
	for i, t := range ordered {
		ids[i] = t.ID
	}
	if err := s.backend.Reorder(ids); err != nil {
		s.transactions = prev
		s.notifier.Error("Failed to update order.")
		return err
	}

	s.mirror()
	s.notifier.Success("Order updated successfully!")
	return nil
}

// UpdateField persists a single-field change and merges it into the
// matching record. On failure the error is returned unchanged and the
// store does not revert: the originating cell reverts its own
// displayed value.
func (s *Store) UpdateField(id int64, p Patch) error {
	if p.IsZero() {
		return errValidation("empty patch")
	}
	if err := s.backend.Update(id, p); err != nil {
		s.notifier.Error("Failed to update transaction.")
		return err
	}

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			p.apply(&s.transactions[i])
			break
		}
	}
	s.mirror()
	return nil
}

// Import creates every given transaction through the backend and
// prepends the created records, keeping the file order at the front of
// the collection. All rows are validated before the first create.
// Entries created before a failing create stay: they already exist on
// the backend.
func (s *Store) Import(txs []Transaction) error {
	for _, t := range txs {
		if err := t.Validate(); err != nil {
			s.notifier.Error(err.Error())
			return err
		}
	}

	created := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		t.ID = 0
		c, err := s.backend.Create(t)
		if err != nil {
			s.transactions = append(created, s.transactions...)
			s.mirror()
			s.notifier.Error("Failed to add transaction.")
			return err
		}
		created = append(created, c)
	}

	s.transactions = append(created, s.transactions...)
	s.mirror()
	s.notifier.Success("Transactions imported successfully!")
	return nil
}

// mirror pushes the whole collection to the backend after a committed
// mutation. Local write failures are logged, not surfaced: the
// in-memory state already holds the truth for this session.
func (s *Store) mirror() {
	if err := s.backend.Mirror(s.transactions); err != nil {
		log.Printf("mirror failed (ignored): %v", err)
	}
}

// isPermutation reports whether b holds exactly the ids of a, no
// duplicates, none missing.
func isPermutation(a, b []Transaction) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int64]bool, len(a))
	for _, t := range a {
		seen[t.ID] = true
	}
	for _, t := range b {
		if !seen[t.ID] {
			return false
		}
		delete(seen, t.ID)
	}
	return len(seen) == 0
}
