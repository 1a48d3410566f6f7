package models

// Client is a person or company represented by the practice.
// IDNumber is unique among clients that are not trashed.
type Client struct {
	ID       int64
	Name     string `validate:"required,max=200"`
	IDType   string `validate:"required,max=20"`
	IDNumber string `validate:"required,max=40"`
	Email    string `validate:"omitempty,email"`
	Phone    string `validate:"max=40"`
	Address  string `validate:"max=300"`
	Deleted  bool
}

func (c Client) Lifecycle() Lifecycle { return LifecycleFromDeleted(c.Deleted) }
