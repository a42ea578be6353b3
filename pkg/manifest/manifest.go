// Package manifest exports a case catalog as a YAML document. It is an
// Exporter collaborator for tested: cases are announced via the StartCase
// protocol, never executed.
package manifest

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/tested"
)

// Case is one announced case in the manifest.
type Case struct {
	Name    string `yaml:"name"`
	Ordinal int    `yaml:"ordinal"`
}

// Group is one group's entry in the manifest.
type Group struct {
	Name  string `yaml:"group"`
	Cases []Case `yaml:"cases"`
}

// Document is the root of the YAML manifest.
type Document struct {
	Groups []Group `yaml:"groups"`
}

// Writer collects announced cases and serializes them as YAML. It
// implements tested.Exporter.
type Writer struct {
	doc Document
}

// NewWriter returns an empty manifest writer.
func NewWriter() *Writer {
	return &Writer{}
}

// OnGroup opens a new group entry.
func (w *Writer) OnGroup(name string) {
	w.doc.Groups = append(w.doc.Groups, Group{Name: name})
}

// OnCase records an announced case under the current group.
func (w *Writer) OnCase(c tested.ExportedCase) {
	if len(w.doc.Groups) == 0 {
		// Export always announces the group first; tolerate stray cases
		// under an anonymous group rather than dropping them.
		w.doc.Groups = append(w.doc.Groups, Group{})
	}
	g := &w.doc.Groups[len(w.doc.Groups)-1]
	g.Cases = append(g.Cases, Case{Name: c.Name, Ordinal: c.Ordinal})
}

// Document returns the collected manifest.
func (w *Writer) Document() Document {
	return w.doc
}

// WriteTo serializes the manifest as YAML.
func (w *Writer) WriteTo(out io.Writer) error {
	data, err := yaml.Marshal(w.doc)
	if err != nil {
		return fmt.Errorf("marshaling case manifest: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing case manifest: %w", err)
	}
	return nil
}
