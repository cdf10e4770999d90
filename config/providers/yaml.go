package providers

import (
	"os"

	"gopkg.in/yaml.v3"
)

type YAMLProvider struct {
	filename string
	content  []byte
}

func NewYAMLProvider(filename string, content []byte) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
		content:  content,
	}
}

func (p *YAMLProvider) Load(cfg any) error {
	if p.filename == "" && p.content == nil {
		return nil
	}

	if p.filename != "" {
		b, err := os.ReadFile(p.filename)
		if err != nil {
			return err
		}
		p.content = b
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(p.content, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}

	return doc.Content[0].Decode(cfg)
}
