package database

import (
	"context"
	"sync"
)

// Queries groups the entity collections. Each method on a collection is
// atomic on its own; flows that read one collection and write another go
// through Store.ExecTx.
type Queries struct {
	Users    *UserStore
	Projects *ProjectStore
	Files    *FileStore
	Events   *EventJournal
}

type Store struct {
	txMu sync.Mutex
	*Queries
}

// NewStore builds empty collections. publisher may be nil.
func NewStore(publisher EventPublisher) *Store {
	return &Store{
		Queries: &Queries{
			Users:    NewUserStore(),
			Projects: NewProjectStore(),
			Files:    NewFileStore(),
			Events:   NewEventJournal(publisher, DefaultJournalLimit),
		},
	}
}

// ExecTx runs fn while holding the store-wide lock, so multi-step flows
// (existence check, authorization, mutation) do not interleave with each
// other. There is no rollback: fn must validate before it mutates.
func (s *Store) ExecTx(ctx context.Context, fn func(*Queries) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(s.Queries)
}
