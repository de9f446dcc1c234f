package main

import (
	"fmt"
	"os"

	"github.com/burpctl/burpctl/internal/external-adapters/yaml"
	"github.com/burpctl/burpctl/internal/ui"
)

// writeDocument prints doc as YAML to stdout, or writes it to path when one
// is given. An existing file is an error, never silently overwritten.
func writeDocument(doc any, path string) error {
	if path == "" {
		return yaml.WriteDocument(os.Stdout, doc)
	}
	if err := yaml.WriteDocumentFile(path, doc); err != nil {
		return err
	}
	fmt.Println(ui.Okf("wrote %s", path))
	return nil
}
