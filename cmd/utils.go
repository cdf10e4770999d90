package cmd

import (
	"fmt"
	"io"

	"github.com/liblicense/liblicense/config"
	"github.com/liblicense/liblicense/pkg/serializer"
	"github.com/liblicense/liblicense/pkg/subkey"
)

const (
	OutputText    = "text"
	OutputJSON    = "json"
	OutputYAML    = "yaml"
	OutputMsgPack = "msgpack"
)

func checkOutput(output string, allowed ...string) error {
	for _, s := range allowed {
		if output == s {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", output)
}

// write encodes v in the output format.
func write(w io.Writer, v interface{}, output string) error {
	s, err := serializer.Get(output)
	if err != nil {
		return fmt.Errorf("invalid output format: %s", output)
	}
	b, err := s.Serialize(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// addDefinitions adds the algorithms given with --define to cfg.
func addDefinitions(cfg *config.Config, defines []string) error {
	defs := make([]subkey.Definition, 0, len(defines))
	for _, s := range defines {
		def, err := subkey.ParseDefinition(s)
		if err != nil {
			return err
		}
		defs = append(defs, def)
	}
	cfg.AddAlgorithms(defs...)
	return nil
}
