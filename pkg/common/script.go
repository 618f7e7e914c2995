package common

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Script tags how many signatures a transaction requires. The client
// only ever produces Single; Multi exists for wire compatibility.
type Script int

const (
	ScriptSingle Script = iota
	ScriptMulti
)

const (
	scriptSingleName = "Single"
	scriptMultiName  = "Multi"
)

func (s Script) String() string {
	switch s {
	case ScriptSingle:
		return scriptSingleName
	case ScriptMulti:
		return scriptMultiName
	}

	return "Unknown"
}

// MarshalJSON encodes the script kind by name.
func (s Script) MarshalJSON() ([]byte, error) {
	switch s {
	case ScriptSingle, ScriptMulti:
		return json.Marshal(s.String())
	}

	return nil, errors.Errorf("unknown script kind %d", int(s))
}

// UnmarshalJSON decodes a script kind from its name.
func (s *Script) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "failed to decode script kind")
	}

	switch name {
	case scriptSingleName:
		*s = ScriptSingle
	case scriptMultiName:
		*s = ScriptMulti
	default:
		return errors.Errorf("unknown script kind %q", name)
	}

	return nil
}
