package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arborly/treewidth/core"
)

// Parse reads a DIMACS-like graph: comment lines start with 'c', the first
// non-comment line is a header whose third whitespace-separated token is
// the vertex count n, and every subsequent non-comment line holds two
// whitespace-separated integers naming an undirected edge. Both directions
// are installed for each edge.
// Complexity: O(lines + n^3) (the graph grows n isolated vertices up
// front via core.NewGraphN, each AddVertex call copying every dense row).
func Parse(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)

	n, headerFound, err := parseHeader(scanner)
	if err != nil {
		return nil, err
	}
	if !headerFound {
		return nil, fmt.Errorf("%w: missing header line", ErrMalformedInput)
	}

	g := core.NewGraphN(n)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: edge line %q needs two vertex ids", ErrMalformedInput, line)
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: vertex token %q is not an integer", ErrMalformedInput, fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: vertex token %q is not an integer", ErrMalformedInput, fields[1])
		}

		if err := g.AddBiEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w: edge (%d,%d): %v", ErrMalformedInput, u, v, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return g, nil
}

// parseHeader skips comment lines and parses the first non-comment line's
// third token as the vertex count.
func parseHeader(scanner *bufio.Scanner) (n int, found bool, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, false, fmt.Errorf("%w: header line %q needs at least 3 tokens", ErrMalformedInput, line)
		}

		n, err = strconv.Atoi(fields[2])
		if err != nil {
			return 0, false, fmt.Errorf("%w: header vertex count %q is not an integer", ErrMalformedInput, fields[2])
		}
		if n < 0 {
			return 0, false, fmt.Errorf("%w: negative vertex count %d", ErrMalformedInput, n)
		}

		return n, true, nil
	}

	return 0, false, scanner.Err()
}
