package testsupport

import (
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

var memoryDBSeq atomic.Int64

// NewSQLiteMemoryDB opens a private in-memory sqlite database. Each call gets
// its own named database so parallel tests never share tables.
func NewSQLiteMemoryDB(name string) (*sql.DB, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_fk=1", name, memoryDBSeq.Add(1))
	return sql.Open("sqlite3", dsn)
}

// NewBunDB wraps NewSQLiteMemoryDB in a bun.DB that is closed with the test.
func NewBunDB(t testing.TB) *bun.DB {
	t.Helper()
	sqlDB, err := NewSQLiteMemoryDB(t.Name())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
