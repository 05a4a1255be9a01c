// SPDX-License-Identifier: MIT
// Package: ninefold/report
//
// report.go — renderers for reports, batches, calibration, DNA and cache.

package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/ninefold/batch"
	"github.com/katalvlaran/ninefold/calibrate"
	"github.com/katalvlaran/ninefold/dna"
	"github.com/katalvlaran/ninefold/engine"
	"github.com/katalvlaran/ninefold/pairing"
	"github.com/katalvlaran/ninefold/store"
	"github.com/katalvlaran/ninefold/symmetry"
	"github.com/katalvlaran/ninefold/track"
)

// Write renders rep in format f.
func Write(w io.Writer, f Format, rep *engine.Report) error {
	if rep == nil {
		return ErrNilReport
	}
	if f.structured() {
		return Encode(w, f, rep)
	}

	sum := newTable(f, "Ω summary")
	sum.header("field", "value")
	sum.row("length", rep.Length)
	sum.row("mode", fmt.Sprintf("%s (stride %d)", rep.Mode, rep.Stride))
	sum.row("basis", rep.Basis)
	sum.row("Ω", f4(rep.Omega))
	sum.row("level", fmt.Sprintf("%s: %s", rep.Level, rep.Level.Description()))
	sum.row("thresholds", fmt.Sprintf("weak %s / strong %s", f4(rep.Thresholds.Weak), f4(rep.Thresholds.Strong)))
	sum.row("fingerprint", rep.Fingerprint)
	if err := rep.Warning(); err != nil {
		sum.row("warning", err.Error())
	}
	tables := []*tableBuilder{sum}

	if len(rep.Tracks) > 0 {
		tr := newTable(f, "Tracks")
		tr.header("track", "name", "kind", "forward", "backward", "yang % fwd", "symmetry", "grade")
		for _, t := range rep.Tracks {
			tr.row(int(t.Track), t.Name, t.Kind.String(),
				f4(t.Forward.Primary()), f4(t.Backward.Primary()),
				pct(t.Forward.Polarity.YangPercent),
				f4(t.Symmetry.Overall), symmetry.GradeOf(t.Symmetry.Overall).String())
		}
		tr.footer("", "", "", "", "", "", "mean "+f4(rep.Symmetry.Mean), symmetry.GradeOf(rep.Symmetry.Mean).String())
		tr.alignRight(4, 5, 6, 7)
		tables = append(tables, tr)
	}

	if len(rep.Deltas) > 0 {
		dt := newTable(f, "Deltas")
		dt.header("label", "forward", "backward", "|Δ|")
		for _, d := range rep.Deltas {
			dt.row(d.Label, f4(d.Forward), f4(d.Backward), f4(d.Delta))
		}
		dt.footer("Ω", "", "", f4(rep.Omega))
		dt.alignRight(2, 3, 4)
		tables = append(tables, dt)
	}

	if t1 := attributeTrack(rep); t1 != nil && len(t1.Forward.State.ByDimension) > 0 {
		tables = append(tables, dimensionTable(f, t1.Forward.State.ByDimension, t1.Backward.State.ByDimension))
	}

	if c := rep.Composite; c != nil {
		ct := newTable(f, "Composite")
		ct.header("score", "value")
		ct.row("randomness", f4(c.Scores.Randomness))
		ct.row("pattern complexity", f4(c.Scores.PatternComplexity))
		ct.row("symmetry", f4(c.Scores.Symmetry))
		ct.row("predictability", f4(c.Scores.Predictability))
		ct.row("overall", f4(c.Scores.Overall))
		ct.row("complexity", f4(c.Complexity))
		ct.alignRight(2)
		tables = append(tables, ct)
	}

	return writeTables(w, tables...)
}

func attributeTrack(rep *engine.Report) *engine.TrackReport {
	for i := range rep.Tracks {
		if rep.Tracks[i].Kind == track.Attribute {
			return &rep.Tracks[i]
		}
	}

	return nil
}

func dimensionTable(f Format, fwd, bwd []pairing.DimensionResult) *tableBuilder {
	t := newTable(f, "Attribute dimensions")
	t.header("dimension", "valid fwd", "ratio fwd", "valid bwd", "ratio bwd")
	for i, d := range fwd {
		var b pairing.Result
		if i < len(bwd) {
			b = bwd[i].Result
		}
		t.row(d.Dimension.String(), fmt.Sprintf("%d/%d", d.Valid, d.Total), f4(d.Ratio),
			fmt.Sprintf("%d/%d", b.Valid, b.Total), f4(b.Ratio))
	}
	t.alignRight(2, 3, 4, 5)

	return t
}

// WriteBatch renders a batch result; tables show the Ω ranking and failures.
func WriteBatch(w io.Writer, f Format, res batch.Result) error {
	if f.structured() {
		return Encode(w, f, res)
	}
	rk := newTable(f, "Ranking by Ω")
	rk.header("#", "name", "Ω", "level", "symmetry")
	for i, r := range res.Ranking {
		rk.row(i+1, r.Name, f4(r.Omega), r.Level, f4(r.Symmetry))
	}
	rk.footer("", fmt.Sprintf("%d items", len(res.Items)), "", fmt.Sprintf("%d failed", res.Failed), fmt.Sprintf("%d cached", res.Hits))
	rk.alignRight(1, 3, 5)
	tables := []*tableBuilder{rk}

	if res.Failed > 0 {
		ft := newTable(f, "Failures")
		ft.header("name", "error")
		for _, it := range res.Items {
			if it.Error != "" {
				ft.row(it.Name, it.Error)
			}
		}
		tables = append(tables, ft)
	}

	return writeTables(w, tables...)
}

// WriteCalibration renders a calibration result.
func WriteCalibration(w io.Writer, f Format, res calibrate.Result) error {
	if f.structured() {
		return Encode(w, f, res)
	}
	t := newTable(f, "Calibration")
	t.header("statistic", "value")
	t.row("trials", res.Trials)
	t.row("length", res.Length)
	t.row("seed", res.Seed)
	t.row("mean", fmt.Sprintf("%.6f", res.Mean))
	t.row("std", fmt.Sprintf("%.6f", res.Std))
	t.row("min", fmt.Sprintf("%.6f", res.Min))
	t.row("max", fmt.Sprintf("%.6f", res.Max))
	t.row("p95", fmt.Sprintf("%.6f", res.P95))
	t.row("suggested weak", fmt.Sprintf("%.6f", res.Suggested.Weak))
	t.row("suggested strong", fmt.Sprintf("%.6f", res.Suggested.Strong))
	t.alignRight(2)

	return writeTables(w, t)
}

// WriteEncoding renders a DNA encoding.
func WriteEncoding(w io.Writer, f Format, enc dna.Encoding) error {
	if f.structured() {
		return Encode(w, f, enc)
	}
	t := newTable(f, "DNA encoding")
	t.header("pair", "digit", "direction", "type")
	for _, u := range enc.Units {
		dir := "→"
		if !u.Forward {
			dir = dna.ReverseMark
		}
		t.row(u.Bases, u.Code, dir, string(u.PairType))
	}
	t.footer("digits", enc.Digits.String(), "GC", pct(enc.Stats.GCContent))

	return writeTables(w, t)
}

// WriteEntries renders a cache listing.
func WriteEntries(w io.Writer, f Format, entries []store.Entry) error {
	if f.structured() {
		if entries == nil {
			entries = []store.Entry{}
		}
		return Encode(w, f, entries)
	}
	t := newTable(f, "Cache")
	t.header("run", "length", "Ω", "level", "fingerprint", "created")
	for _, e := range entries {
		t.row(e.RunID, e.Length, f4(e.Omega), e.Level, e.Fingerprint, e.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	t.footer("", "", "", "", "entries", len(entries))
	t.alignRight(2, 3)

	return writeTables(w, t)
}
