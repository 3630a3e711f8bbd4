package config

import (
	yaml "gopkg.in/yaml.v3"
)

// TOCEntryStyle selects the table of contents entry numbering text, either
// "I." or "Chapter I".
// ENUM(numeral, chapter)
type TOCEntryStyle int

// yaml.v3 does not consult encoding.TextUnmarshaler on decode, hook it up
// explicitly so configuration files can use the symbolic names.

func (x *TOCEntryStyle) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return x.UnmarshalText([]byte(name))
}

func (x TOCEntryStyle) MarshalYAML() (interface{}, error) {
	return x.String(), nil
}
