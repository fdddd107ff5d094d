package ast

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"gopkg.in/yaml.v3"
)

// Tree is the nested-list debug view of a parse tree.
type Tree struct {
	Label    string  `yaml:"label"`
	Children []*Tree `yaml:"children,omitempty"`
}

// Leaf creates a childless node.
func Leaf(label string) *Tree { return &Tree{Label: label} }

// Branch creates a node with children.
func Branch(label string, children ...*Tree) *Tree {
	return &Tree{Label: label, Children: children}
}

// Render converts the tree to a lipgloss tree. Grammar symbols ("<...>")
// and terminals can be styled separately.
func (t *Tree) Render(symbol, terminal lipgloss.Style) *tree.Tree {
	r := tree.Root(t.style(symbol, terminal))
	for _, c := range t.Children {
		if len(c.Children) == 0 {
			r.Child(c.style(symbol, terminal))
			continue
		}
		r.Child(c.Render(symbol, terminal))
	}
	return r
}

func (t *Tree) style(symbol, terminal lipgloss.Style) string {
	if len(t.Label) > 1 && t.Label[0] == '<' && t.Label[len(t.Label)-1] == '>' {
		return symbol.Render(t.Label)
	}
	return terminal.Render(t.Label)
}

// String renders the tree as unstyled indented text.
func (t *Tree) String() string {
	return t.Render(lipgloss.NewStyle(), lipgloss.NewStyle()).String()
}

// YAML marshals the tree.
func (t *Tree) YAML() ([]byte, error) {
	out, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal tree: %w", err)
	}
	return out, nil
}
