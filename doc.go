// Package moneybook implements a personal account-book client: a
// collection of income, expense and saving transactions that can be
// recorded, inline-edited, reordered and summarized, persisted either
// to a remote account-book service (authenticated sessions) or to a
// local fallback file (anonymous sessions).
//
// The Store is the single authoritative holder of the collection; the
// Backend interface hides which persistence is active for the session.
package moneybook
