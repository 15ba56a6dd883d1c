// Package setcover is the module root of a weighted minimum set cover toolkit:
// pick the cheapest collection of candidate sets whose union is the whole
// universe.
//
// What is in the module?
//
//	setcover/      coverability check, exact bitmask DP, greedy heuristic, dispatcher
//	instance/      problem documents (YAML, TOML, JSON, MessagePack, CSV catalogs),
//	               label resolution and solve reports
//	builder/       seeded random and structured instance generators
//	cmd/setcover/  CLI: solve, batch, generate, serve, version
//
// Quick example:
//
//	universe {0..4}, sets {0,1,2} {3} {0,2,4} {3,4}, all weight 1
//	→ exact cover {0,1,2} + {3,4}, total weight 2
//
//	go get github.com/katalvlaran/setcover/setcover
package setcover
