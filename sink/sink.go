// Package sink records which documents were converted. Recording is
// independent of conversion success and must never fail a conversion.
package sink

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded conversion.
type Entry struct {
	ID          uuid.UUID `db:"id"`
	SourcePath  string    `db:"source_path"`
	Document    string    `db:"document"`
	CompletedAt time.Time `db:"completed_at"`
}

// NewEntry builds an entry for the given source and serialized document,
// stamped with the current time.
func NewEntry(sourcePath string, document []byte) Entry {
	return Entry{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		Document:    string(document),
		CompletedAt: time.Now().UTC(),
	}
}

// Sink accepts completed conversion entries. Implementations must be safe
// for concurrent use.
type Sink interface {
	Record(ctx context.Context, e Entry) error
}

// Nop discards every entry.
type Nop struct{}

// Record implements Sink.
func (Nop) Record(context.Context, Entry) error { return nil }
