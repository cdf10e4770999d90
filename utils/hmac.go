package utils

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrUnsupportedEncodingMethod = errors.New("unsupported encoding method")

var encoders = map[string]func([]byte) string{
	"hex":       hex.EncodeToString,
	"base64":    base64.StdEncoding.EncodeToString,
	"base64url": base64.RawURLEncoding.EncodeToString,
}

func Hmac(method string, key []byte, data []byte) ([]byte, error) {
	fn, err := NewHash(method)
	if err != nil {
		return nil, err
	}
	h := hmac.New(fn, key)
	h.Write(data)
	return h.Sum(nil), nil
}

func HmacEncode(method string, key []byte, data []byte, encoding string) (string, error) {
	encode, exist := encoders[encoding]
	if !exist {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEncodingMethod, encoding)
	}
	b, err := Hmac(method, key, data)
	if err != nil {
		return "", err
	}
	return encode(b), nil
}
