// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives bound requests from the handler, calls repository
// methods to interact with the data and re-types storage failures
// into errors the transport layer can map to a status code.
package service
