// Package builder generates set cover instances for tests, benchmarks and
// the command line, in the same "functional options" style as the solver.
//
// Constructors (api.go):
//
//   - Random(universe, sets, density, opts...): each set takes each element
//     independently with probability density; WithCoverable() then patches
//     every uncovered element into a random set.
//   - Partition(universe, parts, opts...): disjoint contiguous blocks; the
//     unique cover is every block.
//   - Demo(): the five-weakness / four-safeguard scenario used in docs.
//
// Configuration primitives:
//   - BuilderOption: mutates builderConfig before construction.
//   - WithSeed / WithRand: RNG source (required by Random).
//   - WithWeightFn: weight distribution (default: integers 1..10).
//   - WithLabelScheme / WithSetNameScheme: element labels and set names.
//
// Guarantees:
//   - Determinism: same arguments, options and seed ⇒ identical instances.
//   - Option constructors panic on meaningless arguments; constructors return
//     sentinel errors (errors.go) and never panic.
//   - Element lists inside each set are sorted ascending and duplicate-free.
package builder
