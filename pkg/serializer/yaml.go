package serializer

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

var YAML YAMLSerializer

type YAMLSerializer struct{}

func (s YAMLSerializer) Serialize(val interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(val); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s YAMLSerializer) Deserialize(b []byte, val interface{}) error {
	return yaml.Unmarshal(b, val)
}
