package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hyejin/moneybook"
)

// Account-book service paths.
const (
	accountBookPath = "/account-book"
	reorderPath     = "/account-book/reorder"
)

// Backend is the authenticated moneybook.Backend, backed by the
// remote account-book service. The design carries no cancellation: a
// hung call simply leaves the pending operation pending.
type Backend struct {
	client *Client
}

// NewBackend returns a Backend over the given client.
func NewBackend(client *Client) *Backend { return &Backend{client: client} }

var _ moneybook.Backend = (*Backend)(nil)

// Load fetches the whole collection.
func (b *Backend) Load() ([]moneybook.Transaction, error) {
	body, err := b.client.Request(context.Background(), accountBookPath, Options{})
	if err != nil {
		return nil, err
	}
	var txs []moneybook.Transaction
	if body == nil {
		return txs, nil
	}
	if err := json.Unmarshal(body, &txs); err != nil {
		return nil, &moneybook.RemoteError{Message: fmt.Sprintf("cannot parse collection: %v", err)}
	}
	return txs, nil
}

// Create posts the transaction (provisional id 0) and returns the
// server record with its assigned id.
func (b *Backend) Create(tx moneybook.Transaction) (moneybook.Transaction, error) {
	body, err := b.client.Request(context.Background(), accountBookPath, Options{
		Method: http.MethodPost,
		Body:   tx,
	})
	if err != nil {
		return moneybook.Transaction{}, err
	}
	var created moneybook.Transaction
	if err := json.Unmarshal(body, &created); err != nil {
		return moneybook.Transaction{}, &moneybook.RemoteError{Message: fmt.Sprintf("cannot parse created transaction: %v", err)}
	}
	return created, nil
}

// Update patches the identified transaction.
func (b *Backend) Update(id int64, p moneybook.Patch) error {
	_, err := b.client.Request(context.Background(), fmt.Sprintf("%s/%d", accountBookPath, id), Options{
		Method: http.MethodPatch,
		Body:   p,
	})
	return err
}

// Delete removes the identified transaction.
func (b *Backend) Delete(id int64) error {
	_, err := b.client.Request(context.Background(), fmt.Sprintf("%s/%d", accountBookPath, id), Options{
		Method: http.MethodDelete,
	})
	return err
}

// Reorder persists the manual order as the full id sequence.
func (b *Backend) Reorder(ids []int64) error {
	_, err := b.client.Request(context.Background(), reorderPath, Options{
		Method: http.MethodPatch,
		Body:   struct {
			OrderedIDs []int64 `json:"orderedIds"`
		}{OrderedIDs: ids},
	})
	return err
}

// Mirror is a no-op: the remote service is already the source of
// truth for authenticated sessions.
func (b *Backend) Mirror([]moneybook.Transaction) error { return nil }
