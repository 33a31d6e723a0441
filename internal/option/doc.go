// Package option is the configuration-resolution core of the optcore
// option subsystem. It turns layered, section-structured TOML documents
// plus caller-supplied seed variables into strongly-typed option values,
// honoring scope-based fallback, eager placeholder interpolation,
// the add/remove/replace edit algebra for list and dict options,
// file-indirected ("fromfile") values, and schema validation.
//
// # Architecture
//
// Data flows one way through the subpackages:
//
//	raw TOML  →  document (layered lookup, eager interpolation)
//	          →  fromfile (optional @path expansion)
//	          →  edit resolution and typed conversion (Reader)
//	          →  caller (folds edit sequences via value.ApplyListEdits)
//
// Validation is a separate read-only scan of the same parsed document.
//
// # Sub-packages
//
//   - value: the closed Val union, list/dict edits, and the
//     string-literal parser
//   - interp: recursive %(name)s placeholder interpolation
//   - document: order-preserving TOML section store with DEFAULT fallback
//   - fromfile: @path / @?path expansion with JSON/YAML/text dispatch
//
// # Basic usage
//
//	src, err := document.FileSource("tool.toml")
//	doc, err := document.Parse(src, option.Seeds(buildRoot))
//	reader := option.NewReader(doc, fromfile.RelativeToCWD())
//	level, err := reader.GetString(option.NewID([]string{"compile"}, "opt", "level"))
//
// A Document and its seeds are immutable after construction, so a Reader
// is safe for concurrent use.
package option
