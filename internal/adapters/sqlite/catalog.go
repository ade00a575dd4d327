// Package sqlite contains the SQLite-backed implementation of the catalog
// secondary port: a local metadata store speaking the same generic query
// shape (selected columns, rendered conditionals, continuation tokens) as
// a remote catalog.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/example/catq/internal/core/metadata"
	"github.com/example/catq/internal/core/query"
	"github.com/example/catq/internal/ports/secondary"
)

// Backend status codes reported through RemoteError.
const (
	statusBackendError = -1
	statusNotFound     = -2
	statusUnknownOp    = -3
	statusDuplicate    = -4
	statusBadRequest   = -5
)

// Catalog implements secondary.Catalog against a local SQLite store.
//
// Continuation tokens index a table of open cursors held by the Catalog:
// the first round trip materializes the full result, later round trips
// drain it page by page. Like a remote catalog connection, a Catalog is
// owned by one logical operation at a time.
type Catalog struct {
	db *sql.DB

	mu        sync.Mutex
	cursors   map[int]*cursor
	nextToken int
}

// cursor holds the undelivered rows of an open query.
type cursor struct {
	rows [][]string
}

// NewCatalog creates a catalog backed by the given database.
func NewCatalog(database *sql.DB) *Catalog {
	return &Catalog{
		db:      database,
		cursors: make(map[int]*cursor),
	}
}

// GenQuery issues one query round trip. The first call (token zero) runs
// the SQL translation of the input and serves the first page; subsequent
// calls drain the cursor identified by the input's continuation token.
func (c *Catalog) GenQuery(ctx context.Context, in *query.Input) (*query.Chunk, int, error) {
	if in.Closed() {
		return nil, 0, query.ErrClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var cur *cursor
	token := in.ContinueIndex
	if token > 0 {
		var ok bool
		cur, ok = c.cursors[token]
		if !ok {
			return nil, 0, &query.RemoteError{
				Op:     "query",
				Status: statusBadRequest,
				Name:   "unknown_continuation_token",
			}
		}
	} else {
		rows, err := c.runQuery(ctx, in)
		if err != nil {
			return nil, 0, err
		}
		if len(rows) == 0 {
			return nil, 0, query.ErrNoRows
		}
		cur = &cursor{rows: rows}
	}

	n := in.MaxRows
	if n <= 0 || n > len(cur.rows) {
		n = len(cur.rows)
	}
	page := cur.rows[:n]
	cur.rows = cur.rows[n:]

	if len(cur.rows) == 0 {
		if token > 0 {
			delete(c.cursors, token)
		}
		token = 0
	} else if token == 0 {
		c.nextToken++
		token = c.nextToken
		c.cursors[token] = cur
	}

	return packChunk(page, len(in.Columns)), token, nil
}

// runQuery translates the input into SQL and materializes all matching
// rows in deterministic order.
func (c *Catalog) runQuery(ctx context.Context, in *query.Input) ([][]string, error) {
	space, err := spaceFor(in)
	if err != nil {
		return nil, badRequest(err)
	}

	exprs := make([]string, len(in.Columns))
	for i, col := range in.Columns {
		expr, err := columnExpr(col, space)
		if err != nil {
			return nil, badRequest(err)
		}
		exprs[i] = expr
	}

	var (
		where []string
		args  []any
	)
	where = append(where, "e.kind = ?")
	args = append(args, space)

	for _, cond := range in.Conds {
		expr, err := columnExpr(cond.Column, space)
		if err != nil {
			return nil, badRequest(err)
		}
		op, err := sqlOp(cond.Op)
		if err != nil {
			return nil, badRequest(err)
		}
		where = append(where, fmt.Sprintf("%s %s ?", expr, op))
		args = append(args, cond.Value)
	}

	stmt := fmt.Sprintf(
		"SELECT DISTINCT %s FROM entries e JOIN avus a ON a.entry_id = e.id WHERE %s ORDER BY %s",
		strings.Join(exprs, ", "),
		strings.Join(where, " AND "),
		strings.Join(exprs, ", "),
	)

	rows, err := c.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, backendError("query", err)
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		values := make([]string, len(exprs))
		dest := make([]any, len(exprs))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, backendError("query", err)
		}
		result = append(result, values)
	}
	if err := rows.Err(); err != nil {
		return nil, backendError("query", err)
	}

	return result, nil
}

// ModMetadata applies a single mutation described by the positional
// argument list.
func (c *Catalog) ModMetadata(ctx context.Context, args metadata.ModArgs) error {
	var kind string
	switch args.Arg1 {
	case "-d":
		kind = "leaf"
	case "-C":
		kind = "container"
	default:
		return &query.RemoteError{
			Op: "mutate", Status: statusBadRequest, Name: "unknown_target_type",
			Stack: []query.StackEntry{{Index: 0, Message: fmt.Sprintf("unknown target type flag '%s'", args.Arg1)}},
		}
	}

	var entryID int64
	err := c.db.QueryRowContext(ctx,
		"SELECT id FROM entries WHERE path = ? AND kind = ?",
		args.Arg2, kind,
	).Scan(&entryID)
	if err == sql.ErrNoRows {
		return &query.RemoteError{
			Op: "mutate", Status: statusNotFound, Name: "entry_not_found",
			Stack: []query.StackEntry{{Index: 0, Message: fmt.Sprintf("no %s entry at '%s'", kind, args.Arg2)}},
		}
	}
	if err != nil {
		return backendError("mutate", err)
	}

	switch args.Arg0 {
	case "add":
		_, err := c.db.ExecContext(ctx,
			"INSERT INTO avus (entry_id, attr, value, units) VALUES (?, ?, ?, ?)",
			entryID, args.Arg3, args.Arg4, args.Arg5,
		)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE") {
				return &query.RemoteError{
					Op: "mutate", Status: statusDuplicate, Name: "duplicate_avu",
					Stack: []query.StackEntry{{Index: 0, Message: err.Error()}},
				}
			}
			return backendError("mutate", err)
		}
		return nil

	case "rm":
		res, err := c.db.ExecContext(ctx,
			"DELETE FROM avus WHERE entry_id = ? AND attr = ? AND value = ? AND units = ?",
			entryID, args.Arg3, args.Arg4, args.Arg5,
		)
		if err != nil {
			return backendError("mutate", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return backendError("mutate", err)
		}
		if n == 0 {
			return &query.RemoteError{
				Op: "mutate", Status: statusNotFound, Name: "avu_not_found",
				Stack: []query.StackEntry{{Index: 0, Message: fmt.Sprintf("no AVU '%s' -> '%s' on '%s'", args.Arg3, args.Arg4, args.Arg2)}},
			}
		}
		return nil

	default:
		return &query.RemoteError{
			Op: "mutate", Status: statusUnknownOp, Name: "unknown_operation",
			Stack: []query.StackEntry{{Index: 0, Message: fmt.Sprintf("operation '%s' not recognized", args.Arg0)}},
		}
	}
}

// Classify resolves a target string to its canonical path and kind. An
// unknown path classifies as KindNotFound, not an error.
func (c *Catalog) Classify(ctx context.Context, target string) (metadata.Target, error) {
	canon := Canonicalize(target)

	var kind string
	err := c.db.QueryRowContext(ctx,
		"SELECT kind FROM entries WHERE path = ?", canon,
	).Scan(&kind)
	if err == sql.ErrNoRows {
		return metadata.Target{Kind: metadata.KindNotFound, Path: canon}, nil
	}
	if err != nil {
		return metadata.Target{}, backendError("query", err)
	}

	switch kind {
	case "leaf":
		return metadata.Target{Kind: metadata.KindLeaf, Path: canon}, nil
	case "container":
		return metadata.Target{Kind: metadata.KindContainer, Path: canon}, nil
	default:
		return metadata.Target{Kind: metadata.KindOther, Path: canon}, nil
	}
}

// AddEntry inserts a catalog entry at the canonicalized path, creating
// any missing ancestor containers.
func (c *Catalog) AddEntry(ctx context.Context, target, kind string) error {
	if kind != "leaf" && kind != "container" {
		return fmt.Errorf("entry kind must be 'leaf' or 'container', got '%s'", kind)
	}

	canon := Canonicalize(target)

	// Walk ancestors root-first so parents exist before children.
	var ancestors []string
	for p := path.Dir(canon); ; p = path.Dir(p) {
		ancestors = append([]string{p}, ancestors...)
		if p == "/" {
			break
		}
	}
	for _, p := range ancestors {
		parent, name := path.Dir(p), path.Base(p)
		if _, err := c.db.ExecContext(ctx,
			"INSERT OR IGNORE INTO entries (path, parent, name, kind) VALUES (?, ?, ?, 'container')",
			p, parent, name,
		); err != nil {
			return fmt.Errorf("failed to create ancestor '%s': %w", p, err)
		}
	}

	parent, name := path.Dir(canon), path.Base(canon)
	if _, err := c.db.ExecContext(ctx,
		"INSERT INTO entries (path, parent, name, kind) VALUES (?, ?, ?, ?)",
		canon, parent, name, kind,
	); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return fmt.Errorf("entry '%s' already exists", canon)
		}
		return fmt.Errorf("failed to create entry '%s': %w", canon, err)
	}

	return nil
}

// Ping reports whether the database is reachable.
func (c *Catalog) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Canonicalize resolves a target string to an absolute, cleaned catalog
// path.
func Canonicalize(target string) string {
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	return path.Clean(target)
}

// spaceFor determines which attribute space a query addresses: the data
// object (leaf) space when any leaf-specific column appears, the
// collection (container) space otherwise.
func spaceFor(in *query.Input) (string, error) {
	all := make([]query.Column, 0, len(in.Columns)+len(in.Conds))
	all = append(all, in.Columns...)
	for _, cond := range in.Conds {
		all = append(all, cond.Column)
	}

	for _, col := range all {
		switch col {
		case query.ColDataName, query.ColMetaDataAttrName, query.ColMetaDataAttrValue, query.ColMetaDataAttrUnits:
			return "leaf", nil
		}
	}
	for _, col := range all {
		switch col {
		case query.ColCollName, query.ColMetaCollAttrName, query.ColMetaCollAttrValue, query.ColMetaCollAttrUnits:
			return "container", nil
		}
	}
	return "", fmt.Errorf("query addresses no known catalog columns")
}

// columnExpr maps a catalog column to its SQL expression. The collection
// name column means the parent collection for data objects and the entry's
// own path for collections.
func columnExpr(col query.Column, space string) (string, error) {
	switch col {
	case query.ColCollName:
		if space == "leaf" {
			return "e.parent", nil
		}
		return "e.path", nil
	case query.ColDataName:
		return "e.name", nil
	case query.ColMetaDataAttrName, query.ColMetaCollAttrName:
		return "a.attr", nil
	case query.ColMetaDataAttrValue, query.ColMetaCollAttrValue:
		return "a.value", nil
	case query.ColMetaDataAttrUnits, query.ColMetaCollAttrUnits:
		return "a.units", nil
	default:
		return "", fmt.Errorf("unknown catalog column %d", col)
	}
}

// sqlOp validates a conditional operator against the supported set.
func sqlOp(op string) (string, error) {
	switch strings.ToLower(op) {
	case "=":
		return "=", nil
	case "<>", "!=":
		return "<>", nil
	case "like":
		return "LIKE", nil
	case "<", ">", "<=", ">=":
		return op, nil
	default:
		return "", fmt.Errorf("unsupported conditional operator '%s'", op)
	}
}

// packChunk renders a page of rows into positional column buffers: per
// column one flat NUL-padded buffer with a fixed stride.
func packChunk(page [][]string, numCols int) *query.Chunk {
	chunk := &query.Chunk{
		Rows: len(page),
		Cols: make([]query.ColumnBuf, numCols),
	}

	for i := 0; i < numCols; i++ {
		stride := 1
		for _, row := range page {
			if len(row[i])+1 > stride {
				stride = len(row[i]) + 1
			}
		}

		buf := make([]byte, stride*len(page))
		for r, row := range page {
			copy(buf[r*stride:], row[i])
		}
		chunk.Cols[i] = query.ColumnBuf{Stride: stride, Buf: buf}
	}

	return chunk
}

func badRequest(err error) error {
	return &query.RemoteError{
		Op: "query", Status: statusBadRequest, Name: "bad_request",
		Stack: []query.StackEntry{{Index: 0, Message: err.Error()}},
	}
}

func backendError(op string, err error) error {
	return &query.RemoteError{
		Op: op, Status: statusBackendError, Name: "backend_error",
		Stack: []query.StackEntry{{Index: 0, Message: err.Error()}},
	}
}

// Ensure Catalog implements the interface.
var _ secondary.Catalog = (*Catalog)(nil)
