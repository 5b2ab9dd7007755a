package chain

import (
	"fmt"
	"strings"
)

// RenderForkDot returns the Graphviz format encoded visualization of
// a contentious fork: the shared prefix followed by the two partisan
// suffixes.
func RenderForkDot(hasher Hasher, prefix, even, odd []*Header) string {
	const (
		arrow = " -> "
		begin = `digraph chain {
rankdir=LR;
size="12,8"`
		end = `}
`
		prefixNode = `node [shape = rect, style=filled, color = chartreuse2];`
		evenNode   = `node [shape = rect, style=filled, color = aquamarine];`
		oddNode    = `node [shape = rect, style=filled, color = lightpink];`
	)

	name := func(h *Header) string {
		return fmt.Sprintf("block_%04x", uint16(hasher.Hash(h)>>48))
	}

	shared := prefixNode
	evens := evenNode
	odds := oddNode

	var start string
	var graph string
	for i, h := range prefix {
		str := name(h)
		start = str
		shared += " " + str

		if i > 0 {
			graph += arrow + str
		} else {
			graph = str
		}
	}
	graph += "\n"

	branch := func(nodes string, suffix []*Header) string {
		line := start
		for _, h := range suffix {
			str := name(h)
			nodes += " " + str
			line += arrow + str
		}
		graph += line + "\n"
		return nodes
	}

	evens = branch(evens, even)
	odds = branch(odds, odd)

	return strings.Join([]string{begin, shared, evens, odds, graph, end}, "\n")
}
