// Package duck is a DuckDB backed record store.
package duck

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"os"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "sieve/entity"
)

const maxLine = 16 * 1024 * 1024

// columns maps record paths to the columns promoted out of raw.
var columns = map[string]string{
	"name":           "name",
	"object.kind":    "kind",
	"path.extension": "extension",
}

type Duck struct {
	db     *sql.DB
	logger nt.Logger
	nextId int64
}

// New opens an in-memory store.
func New(lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", "")
	if err != nil {
		err = errors.Wrapf(err, "failed to open memo duck")
		return
	}

	err = createTable(db)
	if err != nil {
		db.Close()
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Load records from a newline delimited json file.
// Lines that are not json objects are skipped.
func (dk *Duck) Load(ctx context.Context, path string) (count int, err error) {

	file, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open %s", path)
		return
	}
	defer file.Close()

	var recs []nt.Record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxLine)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var rec nt.Record
		if jsonErr := json.Unmarshal(scanner.Bytes(), &rec); jsonErr != nil || rec == nil {
			dk.logger.Info(ctx, "skipping malformed line", "path", path, "line", lineNum)
			continue
		}
		recs = append(recs, rec)
	}
	err = scanner.Err()
	if err != nil {
		err = errors.Wrapf(err, "failed to scan %s", path)
		return
	}

	err = dk.Put(ctx, recs...)
	if err != nil {
		return
	}

	count = len(recs)
	dk.logger.Info(ctx, "loaded records", "path", path, "count", count)
	return
}

// Put stores records, promoting the filterable paths to columns.
func (dk *Duck) Put(ctx context.Context, recs ...nt.Record) (err error) {

	tx, err := dk.db.BeginTx(ctx, nil)
	if err != nil {
		err = errors.Wrapf(err, "failed to begin")
		return
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO files (id, name, kind, extension, raw) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		err = errors.Wrapf(err, "failed to prepare insert")
		return
	}
	defer stmt.Close()

	id := dk.nextId
	for _, rec := range recs {
		var raw []byte
		raw, err = json.Marshal(rec)
		if err != nil {
			err = errors.Wrapf(err, "failed to marshal record")
			return
		}

		id++
		_, err = stmt.ExecContext(ctx, id, stringAt(rec, "name"), kindAt(rec), stringAt(rec, "path.extension"), string(raw))
		if err != nil {
			err = errors.Wrapf(err, "failed to insert record %d", id)
			return
		}
	}

	err = tx.Commit()
	if err != nil {
		err = errors.Wrapf(err, "failed to commit")
		return
	}

	dk.nextId = id
	return
}

// Extensions lists distinct extensions in sorted order.
func (dk *Duck) Extensions(ctx context.Context) (exts []string, err error) {

	rows, err := dk.db.QueryContext(ctx, `
		SELECT DISTINCT extension
		FROM files
		WHERE extension IS NOT NULL AND extension <> ''
		ORDER BY extension
	`)
	if err != nil {
		err = errors.Wrapf(err, "failed to query extensions")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var ext string
		if err = rows.Scan(&ext); err != nil {
			err = errors.Wrapf(err, "failed to scan extension")
			return
		}
		exts = append(exts, ext)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating extensions")
	return
}

// Count returns the number of records matching filter.
func (dk *Duck) Count(ctx context.Context, filter nt.Filter) (count int, err error) {

	where, args, err := whereClause(filter)
	if err != nil {
		return
	}

	err = dk.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM files "+where, args...).Scan(&count)
	err = errors.Wrapf(err, "failed to count files")
	return
}

// Find returns up to limit records matching filter, in load order.
func (dk *Duck) Find(ctx context.Context, filter nt.Filter, limit int) (recs []nt.Record, err error) {

	where, args, err := whereClause(filter)
	if err != nil {
		return
	}

	query := fmt.Sprintf("SELECT raw FROM files %s ORDER BY id LIMIT %d", where, limit)
	rows, err := dk.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = errors.Wrapf(err, "failed to query files")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		rec := nt.Record{}
		if err = json.Unmarshal([]byte(raw), &rec); err != nil {
			err = errors.Wrapf(err, "failed to unmarshal raw record")
			return
		}
		recs = append(recs, rec)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

func createTable(db *sql.DB) (err error) {

	_, err = db.Exec(`
		CREATE TABLE files (
			id BIGINT PRIMARY KEY,
			name VARCHAR,
			kind INTEGER,
			extension VARCHAR,
			raw VARCHAR NOT NULL
		)
	`)
	if err != nil {
		err = errors.Wrapf(err, "failed to create table")
		return
	}

	_, err = db.Exec("CREATE INDEX idx_kind ON files(kind)")
	if err != nil {
		err = errors.Wrapf(err, "failed to create index")
		return
	}

	_, err = db.Exec("CREATE INDEX idx_extension ON files(extension)")
	err = errors.Wrapf(err, "failed to create index")
	return
}

func stringAt(rec nt.Record, path string) any {

	val, ok := rec.Lookup(path)
	if !ok {
		return nil
	}
	str, ok := val.(string)
	if !ok {
		return nil
	}
	return str
}

// kindAt stores only whole kinds that fit the column, NULL otherwise.
func kindAt(rec nt.Record) any {

	val, ok := rec.Lookup("object.kind")
	if !ok {
		return nil
	}

	var kind float64
	switch n := val.(type) {
	case int:
		kind = float64(n)
	case int32:
		kind = float64(n)
	case int64:
		kind = float64(n)
	case float64:
		if n != math.Trunc(n) {
			return nil
		}
		kind = n
	default:
		return nil
	}

	if kind < math.MinInt32 || kind > math.MaxInt32 {
		return nil
	}
	return int32(kind)
}
