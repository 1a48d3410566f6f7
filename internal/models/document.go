package models

import "time"

// Document is a file attached to a client and optionally to one of the
// client's processes. StoredName is the file name in storage, derived from
// Name plus the source extension; it is unique per process among documents
// that are not trashed. StoragePath is the backend key the file was written
// under.
type Document struct {
	ID          int64
	ClientID    int64  `validate:"required,gt=0"`
	ProcessID   *int64 `validate:"omitempty,gt=0"`
	Name        string `validate:"required,max=200"`
	StoredName  string `validate:"required,max=255"`
	UploadedAt  time.Time
	StoragePath string `validate:"required"`
	Category    string `validate:"max=100"`
	Deleted     bool
}

func (d Document) Lifecycle() Lifecycle { return LifecycleFromDeleted(d.Deleted) }
