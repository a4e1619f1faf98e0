package deck

import "gopkg.in/yaml.v3"

// MarshalYAML emits the manifest as a single mapping, keeping page order.
func (m Manifest) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range m.entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.URL},
		)
	}
	return node, nil
}
