package domain

import (
	dhtv1 "chorddht/internal/api/dht/v1"
)

// ToProto renders a NodeRef as its wire representation.
func (n NodeRef) ToProto() *dhtv1.NodeRef {
	return &dhtv1.NodeRef{Id: []byte(n.ID), Host: n.Host, Port: int32(n.Port)}
}

// NodeFromProto converts a wire NodeRef back into a domain NodeRef. Returns
// the zero value if p is nil.
func NodeFromProto(p *dhtv1.NodeRef) NodeRef {
	if p == nil {
		return NodeRef{}
	}
	return NodeRef{ID: ID(p.GetId()), Host: p.GetHost(), Port: int(p.GetPort())}
}

// ToProto renders an Item as its wire representation.
func (it Item) ToProto() *dhtv1.Item {
	return &dhtv1.Item{Key: it.Key, Value: it.Value, Version: it.Version, Timestamp: it.Timestamp}
}

// ItemFromProto converts a wire Item back into a domain Item, computing its
// ring identifier under sp.
func ItemFromProto(sp Space, p *dhtv1.Item) Item {
	if p == nil {
		return Item{}
	}
	return Item{
		Key:       p.GetKey(),
		ID:        sp.HashString(p.GetKey()),
		Value:     p.GetValue(),
		Version:   p.GetVersion(),
		Timestamp: p.GetTimestamp(),
	}
}
