package domain

// Status is the reachability of an identity on the push channel.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)
