// Package report renders conditioning results as aligned text tables.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/fieldline/sigcond/dsp/band"
	"github.com/fieldline/sigcond/dsp/core"
)

// row is one rendered line: a band label, pre-formatted power values and the
// relative change column.
type row struct {
	label   string
	raw     string
	cleaned string
	change  string
}

// BandPowers renders a raw versus cleaned band-power comparison table.
// raw and cleaned must each carry one value per band.
func BandPowers(bands []band.Band, raw, cleaned []float64) (string, error) {
	if len(raw) != len(bands) || len(cleaned) != len(bands) {
		return "", fmt.Errorf("report: %d raw and %d cleaned values for %d bands: %w",
			len(raw), len(cleaned), len(bands), core.ErrInvalidParameter)
	}

	rows := make([]row, len(bands))
	for i, b := range bands {
		rows[i] = row{
			label:   fmt.Sprintf("%g-%g Hz", b.Low, b.High),
			raw:     fmt.Sprintf("%.4e", raw[i]),
			cleaned: fmt.Sprintf("%.4e", cleaned[i]),
			change:  changeDB(raw[i], cleaned[i]),
		}
	}
	return render(rows), nil
}

// changeDB formats the cleaned-to-raw power ratio in dB. Bands with no raw
// power have no meaningful ratio and render as a dash.
func changeDB(raw, cleaned float64) string {
	if raw <= 0 {
		return "-"
	}
	db := core.LinearPowerToDB(cleaned / raw)
	if math.IsInf(db, -1) {
		return "-inf dB"
	}
	return fmt.Sprintf("%+.1f dB", db)
}

func render(rows []row) string {
	headers := [4]string{"Band", "Raw", "Cleaned", "Change"}
	widths := [4]int{len(headers[0]), len(headers[1]), len(headers[2]), len(headers[3])}
	for _, r := range rows {
		for i, cell := range [4]string{r.label, r.raw, r.cleaned, r.change} {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s  %*s  %*s  %*s\n",
		widths[0], headers[0], widths[1], headers[1], widths[2], headers[2], widths[3], headers[3])
	for _, r := range rows {
		fmt.Fprintf(&sb, "%-*s  %*s  %*s  %*s\n",
			widths[0], r.label, widths[1], r.raw, widths[2], r.cleaned, widths[3], r.change)
	}
	return sb.String()
}
