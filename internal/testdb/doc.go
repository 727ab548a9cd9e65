// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests call GetTestDBWithT to obtain a migrated connection and WithTx to run
// in a transaction that is rolled back when the test function returns, so
// tests leave no rows behind and can run in parallel.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        s := postgres.NewPostgresTodoStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The connection string is read from TODO_TEST_DATABASE_URL. When it is
// not set, the test is skipped.
package testdb
