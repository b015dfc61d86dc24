package dto

import (
	"bytes"
	"encoding/json"
)

// NullableID is an optional foreign key in a partial update. Set reports whether
// the field was sent at all; Set with Valid false means an explicit null.
type NullableID struct {
	Set   bool
	Valid bool
	ID    uint
}

func (n *NullableID) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, []byte("null")) {
		n.Valid, n.ID = false, 0
		return nil
	}
	if err := json.Unmarshal(b, &n.ID); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns the id, or nil for an explicit null.
func (n NullableID) Ptr() *uint {
	if !n.Valid {
		return nil
	}
	id := n.ID
	return &id
}
