// Package query is a thin wrapper of the mongo driver bound to one database. Every call is
// timed, slow calls are logged and, with checkIndex on, unindexed reads are rejected.
package query

import (
	"fmt"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
)

var (
	ErrNotFound     = fmt.Errorf("document not found")
	ErrDuplicateKey = fmt.Errorf("duplicate key")
	// ErrCollScan rejects queries the planner answers with a collection scan
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

// Index lists key fields in order, "-field" for descending.
type Index struct {
	Keys   []string
	Unique bool
}

type Mongo interface {
	// EnsureIndexes creates missing indexes. Existing ones with the same keys are kept.
	EnsureIndexes(context ctx.Ctx, table domain.Table, indexes ...Index) error

	// Insert returns ErrDuplicateKey on unique index violation
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne returns ErrNotFound when nothing matches
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the entry matching selector, or inserts it when none matches.
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sorts by `sort` ("timestamp" ascending, "-timestamp" descending). An empty sort
	// leaves the order to mongo.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error
}
