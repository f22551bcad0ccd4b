package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jailop/syssnapshot/pkg/types"
)

// RenderYAML writes the snapshot as a single YAML document.
func RenderYAML(w io.Writer, snap types.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return enc.Close()
}
