package prompt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAnswers reads a flat YAML mapping of setting keys to replies.
// Scalars are kept as written, so `gas_price: 20000000000` stays an
// integer string rather than passing through a float.
func LoadAnswers(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}

	answers := make(map[string]string, len(raw))
	for key, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("answer %q in %s must be a scalar", key, path)
		}
		answers[key] = node.Value
	}
	return answers, nil
}
