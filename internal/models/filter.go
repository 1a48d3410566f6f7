package models

// Filter narrows a gateway listing. Zero values mean "no restriction";
// View defaults to ViewActive. Gateways ignore fields their entity does not
// have.
type Filter struct {
	View      View
	Query     string
	ClientID  int64
	ProcessID int64
}
