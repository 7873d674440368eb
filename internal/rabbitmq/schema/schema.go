package schema

import (
	"encoding/json"
	"time"
)

type FiredTrigger struct {
	Key     string
	FireAt  time.Time
	Payload string
}

func (t *FiredTrigger) Marshal() ([]byte, error) {
	return json.Marshal(t)
}

func (t *FiredTrigger) Unmarshal(data []byte) error {
	return json.Unmarshal(data, t)
}
