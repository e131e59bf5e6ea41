package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

// Operation names carried by RecordChanged.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

// RecordChanged announces a committed write to a donor or expense.
// It carries only identifiers; consumers read current state from the store.
type RecordChanged struct {
	Kind      string    `json:"kind"`
	Op        string    `json:"op"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRecordChanged(kind, op string, id int64) *RecordChanged {
	return &RecordChanged{
		Kind:      kind,
		Op:        op,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
}

func (m *RecordChanged) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordChangedFromJSON decodes and sanity-checks a message body.
func RecordChangedFromJSON(data []byte) (*RecordChanged, error) {
	var msg RecordChanged
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.Kind == "" || msg.Op == "" {
		return nil, fmt.Errorf("record changed message missing kind or op")
	}
	return &msg, nil
}
