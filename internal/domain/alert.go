package domain

import "time"

type AlertType string

const (
	AlertLowStock   AlertType = "low-stock"
	AlertOutOfStock AlertType = "out-of-stock"
)

type AlertStatus string

const (
	AlertActive   AlertStatus = "active"
	AlertResolved AlertStatus = "resolved"
)

// Alert is an ephemeral notification derived from a product's stock
// status. Alerts are regenerated from scratch on every pass and carry a
// fresh id each time, so resolving one only suppresses that instance.
type Alert struct {
	ID          string      `json:"id"`
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	AlertType   AlertType   `json:"alertType"`
	Timestamp   time.Time   `json:"alertTimestamp"`
	Status      AlertStatus `json:"status"`
}
