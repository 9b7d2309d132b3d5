// Package lithoparse extracts structured geotechnical facts from free-text
// soil and rock descriptions written against the BS 5930 vocabulary, and
// performs the inverse operation of rendering structured descriptions back
// into canonical text.
//
// The core entry points are Parse and Generate. Parse never fails on
// arbitrary input: unrecognised words become unknown tokens that lower the
// confidence score, likely misspellings are corrected against the known
// vocabulary, and cross-field rule violations are recorded as warnings on
// the returned description. All operations are deterministic, allocate their
// own results and share only immutable vocabulary tables, so they are safe
// for concurrent use.
package lithoparse

// Version of the lithoparse library.
const Version = "0.2.1"

// ParseBatch parses many descriptions, each independently. Failures do not
// exist at this level: every input yields a description, however low its
// confidence.
func ParseBatch(descriptions []string) []*SoilDescription {
	results := make([]*SoilDescription, len(descriptions))
	for i, d := range descriptions {
		results[i] = Parse(d)
	}
	return results
}
