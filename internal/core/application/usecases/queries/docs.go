// Package queries holds the read side of the application. Handlers run raw
// SQL through gorm and return flat response structs; every query that carries
// a principal asks the authorization policy for its scope first and filters
// rows by that scope in SQL.
package queries
