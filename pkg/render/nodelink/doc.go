// Package nodelink renders the channel network as a node-link diagram.
//
// The wheel shows the 64 gates positionally; this view shows them
// relationally instead: one node per gate that participates in a channel,
// one undirected edge per channel. Graphviz computes the layout, so the
// output is a conventional graph drawing rather than a mandala.
package nodelink
