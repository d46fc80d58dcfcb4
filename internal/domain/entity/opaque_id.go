package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OpaqueID is an identifier issued by the gateway. It is never parsed or
// validated; numeric JSON ids keep their literal text.
type OpaqueID string

func (id OpaqueID) String() string {
	return string(id)
}

func (id *OpaqueID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OpaqueID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = OpaqueID(n.String())
	return nil
}
