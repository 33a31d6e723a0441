package document

import (
	"fmt"
	"strings"
)

// Validate scans the document against a schema of declared section names
// mapped to declared key names. It reports one violation string per
// undeclared section (suppressing that section's keys) and one per
// undeclared key in declared sections, named by its base, in file
// order. The fallback
// section is implicitly valid. Validation never fails; an empty result
// means the document conforms.
func (d *Document) Validate(schema map[string][]string) []string {
	var violations []string
	for _, section := range d.order {
		if section == DefaultSection {
			continue
		}
		declared, ok := schema[section]
		if !ok {
			violations = append(violations, fmt.Sprintf("Invalid table name [%s]", section))
			continue
		}
		keys := make(map[string]struct{}, len(declared))
		for _, k := range declared {
			keys[k] = struct{}{}
		}
		for _, key := range d.keyOrder[section] {
			base := baseKey(key)
			if _, ok := keys[base]; ok {
				continue
			}
			violations = append(violations, fmt.Sprintf("Invalid option '%s' under [%s]", base, section))
		}
	}
	return violations
}

// baseKey strips a single trailing .add or .remove edit suffix.
func baseKey(key string) string {
	if s, ok := strings.CutSuffix(key, ".add"); ok {
		return s
	}
	if s, ok := strings.CutSuffix(key, ".remove"); ok {
		return s
	}
	return key
}
