package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrUnknownEvent indicates an inbound frame named an event we do not handle
	ErrUnknownEvent = errors.New("unknown push event")

	// ErrMalformedPayload indicates a push event payload could not be decoded
	ErrMalformedPayload = errors.New("malformed push event payload")

	// ErrTransportClosed indicates the backend connection is gone
	ErrTransportClosed = errors.New("backend transport closed")

	// ErrJournalNotFound indicates the requested recording session does not exist
	ErrJournalNotFound = errors.New("journal session not found")
)
