// Package report renders analysis results for people and machines.
//
// Four formats are supported: JSON (indented, encoding/json), YAML
// (gopkg.in/yaml.v3), and ASCII or Markdown tables built with
// github.com/jedib0t/go-pretty/v6. Tables show the Ω summary, per-track
// symmetry and the per-dimension deltas; the structured formats carry the
// full engine.Report.
//
// Besides single reports, the package renders batch rankings, calibration
// results, DNA encodings and cache listings in the same formats.
package report
