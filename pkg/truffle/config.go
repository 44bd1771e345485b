// Package truffle renders the truffle-config.js module that points
// Truffle at the user's node.
package truffle

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/rs/zerolog/log"

	"initenv/pkg/network"
	"initenv/pkg/util"
)

const configTemplate = `module.exports = {
    networks: {
        {{.Profile}}: {
        host: {{jsstr .Settings.Host}},
        port: {{jsstr .Settings.Port}},
        network_id: {{jsstr .Settings.NetworkID}},
        from: {{jsstr .Settings.From}},
        gas: {{jsnum .Settings.GasLimit}},
        gasPrice: {{jsnum .Settings.GasPrice}},
        },
    },
    compilers: {
        solc: {
        version: {{jsstr .CompilerVersion}},
        },
    },
};
`

var tmpl = template.Must(template.New("truffle-config").Funcs(template.FuncMap{
	"jsstr": util.FormatJSString,
	"jsnum": util.FormatJSNumber,
}).Parse(configTemplate))

type templateData struct {
	Profile         string
	Settings        network.Settings
	CompilerVersion string
}

// Render produces the config module for s. String fields are escaped, and
// gas values that are not plain integers are emitted as strings.
func Render(s network.Settings, compilerVersion string) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, templateData{
		Profile:         network.ProfileName,
		Settings:        s,
		CompilerVersion: compilerVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render truffle config: %w", err)
	}
	return buf.Bytes(), nil
}

// Write replaces the file at path with content. The parent directory must
// already exist.
func Write(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write truffle config: %w", err)
	}
	log.Info().Str("path", path).Int("bytes", len(content)).Msg("Wrote truffle config")
	return nil
}
