package serializer

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

var MsgPack MsgPackSerializer

// MsgPackSerializer encodes structs by their json field names.
type MsgPackSerializer struct{}

func (s MsgPackSerializer) Serialize(val interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := msgpack.NewEncoder(&buf)
	encoder.SetCustomStructTag("json")
	encoder.UseCompactInts(true)
	if err := encoder.Encode(val); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s MsgPackSerializer) Deserialize(b []byte, val interface{}) error {
	decoder := msgpack.NewDecoder(bytes.NewReader(b))
	decoder.SetCustomStructTag("json")
	return decoder.Decode(val)
}
