package moneybook

// Backend persists the collection. Exactly one implementation is
// selected per session: the remote account-book service when
// authenticated, the local fallback file otherwise. The Store never
// branches on login state; it only talks to its Backend.
type Backend interface {
	// Load returns the authoritative collection for this session.
	Load() ([]Transaction, error)

	// Create persists a new transaction and returns it with its
	// assigned id.
	Create(tx Transaction) (Transaction, error)

	// Update applies a partial change to the identified transaction.
	Update(id int64, p Patch) error

	// Delete removes the identified transaction.
	Delete(id int64) error

	// Reorder persists a new manual order as the full id sequence.
	Reorder(ids []int64) error

	// Mirror receives the whole collection after every committed
	// mutation. The local backend rewrites its file so a reload loses
	// nothing; remote backends ignore it.
	Mirror(txs []Transaction) error
}
