package edgelist

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ParseError reports a malformed record together with its absolute
// byte offset in the file.
type ParseError struct {
	Offset int64
	Line   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("edgelist: offset %d: %q: %v", e.Offset, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errNodeColumns = errors.New("expected at least two node columns")

type lineKind int

const (
	lineEdge lineKind = iota
	lineComment
	lineBlank
)

// parser holds the precompiled parse configuration. It is read-only
// after construction and shared by all chunk goroutines.
type parser struct {
	comment       []byte
	sep           byte
	firstNode     uint64
	readWeights   bool
	defaultWeight float64
}

func newParser(o Options) *parser {
	return &parser{
		comment:       []byte(o.Comment),
		sep:           o.Separator,
		firstNode:     o.FirstNode,
		readWeights:   o.ReadWeights,
		defaultWeight: o.DefaultWeight,
	}
}

// parse classifies one line and decodes it into an Edge when it is a
// record. Columns beyond the ones consumed are ignored.
func (p *parser) parse(line []byte) (Edge, lineKind, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return Edge{}, lineBlank, nil
	}
	if len(p.comment) > 0 && bytes.HasPrefix(line, p.comment) {
		return Edge{}, lineComment, nil
	}

	uf, rest := p.nextField(line)
	vf, rest := p.nextField(rest)
	if len(uf) == 0 || len(vf) == 0 {
		return Edge{}, lineEdge, errNodeColumns
	}

	u, err := p.node(uf)
	if err != nil {
		return Edge{}, lineEdge, err
	}
	v, err := p.node(vf)
	if err != nil {
		return Edge{}, lineEdge, err
	}

	e := Edge{U: u, V: v, Weight: p.defaultWeight}
	if p.readWeights {
		if wf, _ := p.nextField(rest); len(wf) > 0 {
			w, err := strconv.ParseFloat(string(wf), 64)
			if err != nil {
				return Edge{}, lineEdge, fmt.Errorf("weight %q: %w", wf, err)
			}
			e.Weight = w
		}
	}
	return e, lineEdge, nil
}

// nextField returns the next column and the remainder of the line.
func (p *parser) nextField(b []byte) (field, rest []byte) {
	if p.sep == 0 {
		for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
			b = b[1:]
		}
		i := 0
		for i < len(b) && b[i] != ' ' && b[i] != '\t' {
			i++
		}
		return b[:i], b[i:]
	}
	if i := bytes.IndexByte(b, p.sep); i >= 0 {
		return b[:i], b[i+1:]
	}
	return b, nil
}

// node decodes a node id column and applies the first-node shift.
func (p *parser) node(b []byte) (uint64, error) {
	n, err := parseUint(b)
	if err != nil {
		return 0, err
	}
	if n < p.firstNode {
		return 0, fmt.Errorf("node id %d below first node %d", n, p.firstNode)
	}
	return n - p.firstNode, nil
}

// parseUint decodes a decimal uint64 without allocating.
func parseUint(b []byte) (uint64, error) {
	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid node id %q", b)
		}
		d := uint64(c - '0')
		if n > (math.MaxUint64-d)/10 {
			return 0, fmt.Errorf("node id %q overflows uint64", b)
		}
		n = n*10 + d
	}
	return n, nil
}
