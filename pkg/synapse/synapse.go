package synapse

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Synapse is a named automation unit on a Kalliope server.
type Synapse struct {
	// Name identifies the synapse on the server and is used to run it.
	Name string `json:"name"`

	// Order is the payload of the synapse's triggering signal, or nil.
	Order *Order `json:"order,omitempty"`
}

// Order is the payload a signal carries under its "order" key.
// Its structure belongs to the server; Value holds it as decoded JSON.
type Order struct {
	Value any
}

// NewOrder wraps a decoded JSON value.
func NewOrder(v any) *Order {
	return &Order{Value: v}
}

// String renders string orders as-is and anything else as compact JSON.
func (o *Order) String() string {
	if o == nil {
		return ""
	}
	if s, ok := o.Value.(string); ok {
		return s
	}
	b, err := sonic.ConfigStd.Marshal(o.Value)
	if err != nil {
		return fmt.Sprint(o.Value)
	}
	return string(b)
}

// MarshalJSON encodes the order as its raw value.
func (o *Order) MarshalJSON() ([]byte, error) {
	return sonic.ConfigStd.Marshal(o.Value)
}
