package domain

import (
	"encoding/json"
	"fmt"
)

type EventType string

const (
	EventStockUpdate   EventType = "STOCK_UPDATE"
	EventProductUpdate EventType = "PRODUCT_UPDATE"
	EventProductAdd    EventType = "PRODUCT_ADD"
	EventProductDelete EventType = "PRODUCT_DELETE"
	EventSale          EventType = "SALE"
)

// Event is the closed union of sync messages exchanged between tabs and
// devices. The wire format is a flat JSON object carrying a "type" tag
// next to the variant's own fields.
type Event interface {
	Type() EventType

	// sealed prevents variants outside this package.
	sealed()
}

type StockUpdateEvent struct {
	ProductID    string `json:"productId"`
	NewStock     int    `json:"newStock"`
	SoldQuantity int    `json:"soldQuantity,omitempty"`
}

type ProductUpdateEvent struct {
	Product Product `json:"product"`
}

type ProductAddEvent struct {
	Product Product `json:"product"`
}

type ProductDeleteEvent struct {
	ProductID string `json:"productId"`
}

type SaleEvent struct {
	Sale Sale `json:"sale"`
}

func (StockUpdateEvent) Type() EventType   { return EventStockUpdate }
func (ProductUpdateEvent) Type() EventType { return EventProductUpdate }
func (ProductAddEvent) Type() EventType    { return EventProductAdd }
func (ProductDeleteEvent) Type() EventType { return EventProductDelete }
func (SaleEvent) Type() EventType          { return EventSale }

func (StockUpdateEvent) sealed()   {}
func (ProductUpdateEvent) sealed() {}
func (ProductAddEvent) sealed()    {}
func (ProductDeleteEvent) sealed() {}
func (SaleEvent) sealed()          {}

// MarshalEvent serializes an event with its "type" tag inlined.
func MarshalEvent(e Event) ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}

	fields := make(map[string]json.RawMessage)
	if err = json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	tag, err := json.Marshal(e.Type())
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}
	fields["type"] = tag

	return json.Marshal(fields)
}

// UnmarshalEvent decodes a tagged event payload. Payloads with a missing
// or unknown tag are rejected.
func UnmarshalEvent(data []byte) (Event, error) {
	var head struct {
		Type EventType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	switch head.Type {
	case EventStockUpdate:
		var e StockUpdateEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("json.Unmarshal -> %w", err)
		}
		return e, nil
	case EventProductUpdate:
		var e ProductUpdateEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("json.Unmarshal -> %w", err)
		}
		return e, nil
	case EventProductAdd:
		var e ProductAddEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("json.Unmarshal -> %w", err)
		}
		return e, nil
	case EventProductDelete:
		var e ProductDeleteEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("json.Unmarshal -> %w", err)
		}
		return e, nil
	case EventSale:
		var e SaleEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("json.Unmarshal -> %w", err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", head.Type)
	}
}
