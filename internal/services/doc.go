// Package services holds the workflows that span more than one gateway or
// touch something besides the record store: authentication and sessions,
// and document upload through a filestore.Store.
package services
