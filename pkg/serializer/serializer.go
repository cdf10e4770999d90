package serializer

import "fmt"

type Serializer interface {
	Serialize(val interface{}) ([]byte, error)
	Deserialize(b []byte, val interface{}) error
}

var serializers = map[string]Serializer{
	"json":    JSON,
	"yaml":    YAML,
	"msgpack": MsgPack,
}

// Get returns the serializer of a format name.
func Get(format string) (Serializer, error) {
	s, ok := serializers[format]
	if !ok {
		return nil, fmt.Errorf("unknown serializer: %s", format)
	}
	return s, nil
}
