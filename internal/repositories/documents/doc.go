// Package documents is the gateway for document records.
//
// A document row points at a file written by the filestore package; the
// gateway never touches the file itself. Documents are soft-deletable like
// clients, and within one process no two active documents share a stored
// name. Documents attached to no process are guarded per client by
// ExistsActive only.
package documents
