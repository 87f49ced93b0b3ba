package actions

import (
	"bytes"
	"encoding/json"
)

// NullString distinguishes the three states a nullable patch field can be in:
// omitted (Set=false, keep the stored value), explicit null (Set=true,
// Value=nil, clear it), and a value (Set=true, Value non-nil).
type NullString struct {
	Set   bool
	Value *string
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
