// Package sqlerr handles database driver errors.
//
// It classifies cryptic SQLSTATE codes from the driver and
// converts them into user-friendly messages (e.g. turning a
// foreign key violation into "The referenced Question does not exist").
package sqlerr
