package synapse

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// JSONToSynapses maps a decoded /synapses payload to Synapse values.
//
// Entries without a string "name" are skipped. When several signals of an
// entry carry an "order", the last one in array order is kept. The result
// preserves the order of the "synapses" array and is never nil.
func JSONToSynapses(root map[string]any) []Synapse {
	synapses := []Synapse{}

	entries, ok := root["synapses"].([]any)
	if !ok {
		return synapses
	}

	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name, ok := entry["name"].(string)
		if !ok || name == "" {
			continue
		}

		var order *Order
		if signals, ok := entry["signals"].([]any); ok {
			for _, s := range signals {
				signal, ok := s.(map[string]any)
				if !ok {
					continue
				}
				if v, ok := signal["order"]; ok {
					order = NewOrder(v)
				}
			}
		}

		synapses = append(synapses, Synapse{Name: name, Order: order})
	}

	return synapses
}

// DecodeSynapses decodes a raw /synapses body and maps it with JSONToSynapses.
func DecodeSynapses(body []byte) ([]Synapse, error) {
	var root any
	if err := sonic.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %T", ErrMalformedResponse, root)
	}
	return JSONToSynapses(obj), nil
}
