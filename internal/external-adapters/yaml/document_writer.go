package yaml

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteDocument serializes an opaque API document as YAML to w.
func WriteDocument(w io.Writer, doc any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return enc.Close()
}

// WriteDocumentFile writes doc to path as YAML, refusing to overwrite: the
// file is created exclusively and an existing path is an error.
func WriteDocumentFile(path string, doc any) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) // #nosec G304 -- user-supplied output path
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteDocument(f, doc); err != nil {
		//nolint:errcheck // Best effort close after encode failure
		f.Close()
		return err
	}
	return f.Close()
}
