package subkey

import (
	"strings"

	"github.com/liblicense/liblicense/pkg/license"
	"github.com/liblicense/liblicense/utils"
)

type WrapOptions struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

type HmacOptions struct {
	Secret   string `json:"secret" validate:"required"`
	Hash     string `json:"hash" default:"sha-256"`
	Encoding string `json:"encoding" default:"hex"`
}

type DigestOptions struct {
	Hash   string `json:"hash" default:"sha-256"`
	Rounds int    `json:"rounds" default:"1" validate:"gte=1,lte=1000"`
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func init() {
	register(TypeWrap, func(options map[string]interface{}) (license.Algorithm, error) {
		opts := WrapOptions{}
		if err := decodeOptions(options, &opts); err != nil {
			return nil, err
		}
		return license.AlgorithmFunc(func(seed string) string {
			return opts.Prefix + seed + opts.Suffix
		}), nil
	})

	register(TypeReverse, func(options map[string]interface{}) (license.Algorithm, error) {
		if err := decodeOptions(options, &struct{}{}); err != nil {
			return nil, err
		}
		return license.AlgorithmFunc(reverse), nil
	})

	register(TypeHmac, func(options map[string]interface{}) (license.Algorithm, error) {
		opts := HmacOptions{}
		if err := decodeOptions(options, &opts); err != nil {
			return nil, err
		}
		if _, err := utils.HmacEncode(opts.Hash, nil, nil, opts.Encoding); err != nil {
			return nil, err
		}
		return license.AlgorithmFunc(func(seed string) string {
			// hash and encoding were checked above
			s, _ := utils.HmacEncode(opts.Hash, []byte(opts.Secret), []byte(seed), opts.Encoding)
			return s
		}), nil
	})

	register(TypeDigest, func(options map[string]interface{}) (license.Algorithm, error) {
		opts := DigestOptions{}
		if err := decodeOptions(options, &opts); err != nil {
			return nil, err
		}
		digest, err := license.NewDigest(opts.Hash)
		if err != nil {
			return nil, err
		}
		return license.AlgorithmFunc(func(seed string) string {
			s := seed
			for i := 0; i < opts.Rounds; i++ {
				s = digest([]byte(s))
			}
			return s
		}), nil
	})
}

// Builtin returns the definitions of the demo key generator: the seed wrapped
// in underscores, the seed followed by version numbers 1.0.1 to 1.0.5, and
// the reversed seed.
func Builtin() []Definition {
	defs := []Definition{
		{Name: "underscore", Type: TypeWrap, Options: map[string]interface{}{"prefix": "_", "suffix": "_"}},
	}
	for _, v := range []string{"1.0.1", "1.0.2", "1.0.3", "1.0.4", "1.0.5"} {
		defs = append(defs, Definition{
			Name:    "v" + v,
			Type:    TypeWrap,
			Options: map[string]interface{}{"suffix": v},
		})
	}
	defs = append(defs, Definition{Name: "reversed", Type: TypeReverse})
	return defs
}

// ParseDefinition reads the compact "name=type[:k=v,k=v]" form used on the
// command line, e.g. "v2=wrap:suffix=2.0.0".
func ParseDefinition(s string) (Definition, error) {
	name, rest, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return Definition{}, errInvalidDefinition(s)
	}
	typ, params, _ := strings.Cut(rest, ":")
	def := Definition{Name: name, Type: Type(typ)}
	if params != "" {
		def.Options = make(map[string]interface{})
		for _, param := range strings.Split(params, ",") {
			k, v, ok := strings.Cut(param, "=")
			if !ok || k == "" {
				return Definition{}, errInvalidDefinition(s)
			}
			def.Options[k] = v
		}
	}
	return def, nil
}
