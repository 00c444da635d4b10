// Package errs defines the error shape returned to API clients.
//
// Every failure leaves the server as an HTTPError serialized to JSON,
// so clients receive consistent, actionable error messages.
package errs
