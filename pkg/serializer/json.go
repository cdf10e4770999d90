package serializer

import (
	"encoding/json"
)

var JSON JSONSerializer

// JSONSerializer writes indented JSON with a trailing newline.
type JSONSerializer struct{}

func (s JSONSerializer) Serialize(val interface{}) ([]byte, error) {
	b, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (s JSONSerializer) Deserialize(b []byte, val interface{}) error {
	return json.Unmarshal(b, val)
}
