// Package core provides the word-adjacency Graph that lyricwalk walks over.
//
// A Graph G = (V,E) is built from an ordered token stream:
//
//   - V is the set of distinct tokens, held in a registry.Registry arena and
//     addressed by dense integer IDs in first-occurrence order.
//   - E is a square matrix.BitMatrix; bit (i,j) set means "token i was
//     directly followed by token j somewhere in the input".
//
// Edges are directed and unweighted. Self-loops are allowed ("la la") and
// repeated pairs collapse into one bit, so two words that co-occur a hundred
// times are indistinguishable from two that co-occur once.
//
// Lifecycle:
//
//	Building: NewGraph(capacity), AddVertex/AddVertices, CreateEdge, or Build(tokens).
//	Readable: Successors, HasEdge, Stats, and walks from package walk.
//
// The transition is implicit. Nothing is ever removed. Graph carries no locks:
// mutating it while a walk is running is unsafe, while any number of
// concurrent readers are fine once building is done.
//
// Failure policy:
//
//	duplicate vertex   → not an error; AddVertex reports added == false
//	unknown endpoint   → CreateEdge returns ErrUnknownEndpoint, matrix untouched
//	Build              → counts unknown endpoints in BuildReport and continues
//
// Example:
//
//	g, report, err := core.FromTokens([]string{"the", "cat", "meows", "cat"})
//	// g.Matrix():
//	// 010
//	// 001
//	// 010
package core
