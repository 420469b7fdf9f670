// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: YAML form of a Chart.
//
//	nodes:
//	  - id: start
//	    kind: start
//	    label: START
//	    next: sample_size
//	  - id: sample_size
//	    kind: decision
//	    label: "> 50 samples?"
//	    "yes": predict_category
//	    "no": more_data
//
// Each entry is checked with validator struct tags before the node
// constructors run, so document errors name the offending field.

package flowchart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type document struct {
	Nodes []nodeSpec `yaml:"nodes" validate:"required,min=1,dive"`
}

type nodeSpec struct {
	ID                   string `yaml:"id" validate:"required"`
	Kind                 string `yaml:"kind" validate:"required,oneof=start decision category terminal algorithm"`
	Label                string `yaml:"label"`
	LabelSecondary       string `yaml:"label_secondary,omitempty"`
	Description          string `yaml:"description,omitempty"`
	DescriptionSecondary string `yaml:"description_secondary,omitempty"`
	Next                 string `yaml:"next,omitempty" validate:"excluded_unless=Kind start"`
	Yes                  string `yaml:"yes,omitempty" validate:"excluded_unless=Kind decision"`
	No                   string `yaml:"no,omitempty" validate:"excluded_unless=Kind decision"`
}

// Decode reads a YAML chart document and builds it with New(nodes, opts...).
// Unknown keys and schema violations fail with ErrInvalidDocument; the
// structural errors of New and the node constructors pass through unchanged.
func Decode(r io.Reader, opts ...Option) (*Chart, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	// kinds are matched case-insensitively, as ParseKind does
	for i := range doc.Nodes {
		doc.Nodes[i].Kind = strings.ToLower(strings.TrimSpace(doc.Nodes[i].Kind))
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, formatValidationError(err))
	}

	nodes := make([]Node, 0, len(doc.Nodes))
	for _, spec := range doc.Nodes {
		k, err := ParseKind(spec.Kind)
		if err != nil {
			return nil, err
		}
		nodeOpts := []NodeOption{
			WithDescription(spec.Description),
			WithDescriptionSecondary(spec.DescriptionSecondary),
		}
		if spec.Next != "" {
			nodeOpts = append(nodeOpts, WithNext(spec.Next))
		}
		n, err := newNode(k, spec.ID, spec.Label, spec.LabelSecondary, spec.Yes, spec.No, nodeOpts...)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	return New(nodes, opts...)
}

// Encode writes c as a YAML document in declaration order.
func Encode(w io.Writer, c *Chart) error {
	doc := document{Nodes: make([]nodeSpec, 0, c.Len())}
	for _, n := range c.Nodes() {
		doc.Nodes = append(doc.Nodes, nodeSpec{
			ID:                   n.id,
			Kind:                 n.kind.String(),
			Label:                n.label,
			LabelSecondary:       n.label2,
			Description:          n.desc,
			DescriptionSecondary: n.desc2,
			Next:                 n.next,
			Yes:                  n.yesTarget,
			No:                   n.noTarget,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("flowchart: encode: %w", err)
	}
	return enc.Close()
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "excluded_unless":
		return fmt.Sprintf("%s is only allowed when %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
