// Package instance reads, writes and reports set cover problems.
//
// An Instance names its universe elements (e.g. weakness identifiers such as
// "CWE-79") and its candidate sets (e.g. safeguards), so that solver output
// can be mapped back to the caller's domain. Supported encodings:
//
//   - YAML, TOML, JSON and MessagePack documents (Decode/Encode, Load);
//   - CSV safeguard catalogs "id, labels, info[, weight]" (LoadCatalog).
//
// Resolve turns label lists into universe indices; Solve runs the setcover
// solver and returns a Report with names, labels and uncovered elements.
//
//	in, err := instance.Load("safeguards.yaml")
//	if err != nil {
//		return err
//	}
//	rep, err := instance.Solve(in, setcover.Auto)
//	if err != nil {
//		return err
//	}
//	_ = instance.Encode(os.Stdout, instance.FormatText, rep)
package instance
