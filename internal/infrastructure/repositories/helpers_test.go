package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		username TEXT NOT NULL,
		email TEXT NOT NULL,
		is_freelancer BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProjectTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		budget REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createContractTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contracts (
		id TEXT PRIMARY KEY,
		contract_type TEXT NOT NULL,
		freelancer_id TEXT NOT NULL,
		client_id TEXT NOT NULL,
		project_id TEXT,
		service_request_id TEXT,
		contract_on_chain_id TEXT NOT NULL,
		amount_locked REAL NOT NULL,
		escrow_status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func seedUser(t *testing.T, db *gorm.DB, name string, freelancer bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	mustExec(t, db, `INSERT INTO users (id, name, username, email, is_freelancer, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id.String(), name, name, name+"@example.com", freelancer, time.Now(), time.Now())
	return id
}
