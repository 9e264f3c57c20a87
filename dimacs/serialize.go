package dimacs

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arborly/treewidth/decomposition"
)

// Format selects the output grammar Serialize writes.
type Format string

const (
	// FormatDIMACS is the conventional DIMACS-like tree-decomposition
	// shape: a header line, one "b" line per bag, one edge line per tree
	// edge.
	FormatDIMACS Format = "dimacs"
	// FormatYAML is a diagnostic dump of the same structure via
	// gopkg.in/yaml.v3, useful for inspecting a decomposition by hand.
	FormatYAML Format = "yaml"
)

// Document mirrors a decomposition.Tree in a shape suitable for either
// output grammar: bags renumbered 1..num_bags in ascending order of their
// internal id, plus the tree edges between those renumbered ids.
type Document struct {
	Treewidth int      `yaml:"treewidth"`
	Bags      []Bag    `yaml:"bags"`
	TreeEdges [][2]int `yaml:"tree_edges"`
	Vertices  int      `yaml:"vertices"`
}

// Bag is one renumbered bag of a Document.
type Bag struct {
	ID       int   `yaml:"id"`
	Vertices []int `yaml:"vertices"`
}

// toDocument renumbers tree's internal bag ids to 1..num_bags, ascending,
// and carries the tree edges across under the new numbering.
func toDocument(tree *decomposition.Tree) Document {
	ids := tree.Bags()
	renumber := make(map[int]int, len(ids))
	for i, id := range ids {
		renumber[id] = i + 1
	}

	doc := Document{
		Treewidth: tree.Treewidth(),
		Vertices:  tree.Graph().N(),
	}
	for _, id := range ids {
		doc.Bags = append(doc.Bags, Bag{ID: renumber[id], Vertices: tree.Bag(id).Slice()})
	}
	for _, id := range ids {
		for _, nb := range tree.Neighbours(id) {
			if nb > id {
				doc.TreeEdges = append(doc.TreeEdges, [2]int{renumber[id], renumber[nb]})
			}
		}
	}

	return doc
}

// Serialize writes tree to w in the requested format.
func Serialize(w io.Writer, tree *decomposition.Tree, format Format) error {
	doc := toDocument(tree)

	switch format {
	case FormatYAML:
		return serializeYAML(w, doc)
	case FormatDIMACS, "":
		return serializeDIMACS(w, doc)
	default:
		return fmt.Errorf("dimacs: unknown output format %q", format)
	}
}

func serializeDIMACS(w io.Writer, doc Document) error {
	maxBagSize := doc.Treewidth + 1
	if maxBagSize < 0 {
		maxBagSize = 0
	}

	if _, err := fmt.Fprintf(w, "s td %d %d %d\n", len(doc.Bags), maxBagSize, doc.Vertices); err != nil {
		return err
	}

	for _, bag := range doc.Bags {
		if _, err := fmt.Fprintf(w, "b %d", bag.ID); err != nil {
			return err
		}
		for _, v := range bag.Vertices {
			if _, err := fmt.Fprintf(w, " %d", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	for _, edge := range doc.TreeEdges {
		if _, err := fmt.Fprintf(w, "%d %d\n", edge[0], edge[1]); err != nil {
			return err
		}
	}

	return nil
}

func serializeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(doc)
}
