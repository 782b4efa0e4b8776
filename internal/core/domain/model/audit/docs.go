// Package audit contains the append-only audit trail entry.
//
// Entries are never updated or deleted by the application; their
// store-assigned sequence number doubles as creation order.
package audit
