// Package database provides SQLite connectivity for taskgate.
//
// It manages:
//   - Database connection with WAL mode for concurrent reads
//   - Embedded schema migrations (schema_migrations tracking table)
//   - Connection lifecycle and health checks
//
// Security considerations:
//   - All queries use parameterised statements (no SQL injection)
//   - Database file permissions are set to 0600 (owner read/write only)
//
// Usage:
//
//	db, err := database.Open(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Migrations are additive-only: new columns must be nullable or carry a
// DEFAULT, and each migration ships both .up.sql and .down.sql.
package database
