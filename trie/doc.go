package trie

/*

# Arena tries with fixed fanout

This package provides the node store shared by the occurrence indexes and the
frequency dictionary.

Nodes live in a single append-only slice and refer to each other by index
(`Ref`), never by pointer. A node's children are a fixed array of
`Slots` refs:

	slot 0        terminal marker ("an inserted string ends here")
	slot 1..K     one per alphabet symbol, by rank

so a child lookup is a single array index and the shape of the array does not
depend on which alphabet was chosen.

## Core invariants

1. the root is always Ref 0 and exists from construction
2. every node other than the root has exactly one parent (a tree, not a DAG)
3. once `Freeze` is called no node, child slot, or payload changes

(3) is what makes concurrent readers safe without locks: after the build phase
the arena is only ever read.

Each node carries a caller defined payload `P`. Payloads are updated through
`Update` while building and copied out through `Get` afterwards.

*/
