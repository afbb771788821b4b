// Package testdb provides utilities specifically for database testing.
//
// Tests that need PostgreSQL call GetTestDBWithT, which skips the test when
// no database URL is configured and applies the embedded migrations once per
// process. WithTx gives each test a transaction that is always rolled back.
package testdb
