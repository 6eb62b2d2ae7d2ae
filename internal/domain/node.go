package domain

import "fmt"

// NodeRef identifies a ring member: its identifier plus the address other
// nodes dial to reach it.
type NodeRef struct {
	ID   ID
	Host string
	Port int
}

// Addr returns the "host:port" dial string for this node.
func (n NodeRef) Addr() string {
	return fmt.Sprintf("%s:%d", n.Host, n.Port)
}

// IsZero reports whether n carries no identity at all (nil ID, empty addr).
func (n NodeRef) IsZero() bool {
	return n.ID == nil && n.Host == "" && n.Port == 0
}

// Equal compares two node references by identifier.
func (n NodeRef) Equal(o NodeRef) bool {
	return n.ID.Equal(o.ID)
}

// String implements fmt.Stringer for log lines.
func (n NodeRef) String() string {
	return fmt.Sprintf("%s@%s", n.ID.ToHexString(), n.Addr())
}
