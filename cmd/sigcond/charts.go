package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fieldline/sigcond/dsp/band"
	"github.com/fieldline/sigcond/dsp/pipeline"
)

// writeCharts renders the raw and cleaned signals, their spectra and the
// band-power comparison as HTML files under dir.
func writeCharts(dir string, sampleRate float64, bands []band.Band, res pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	times := make([]string, len(res.Raw))
	for i := range times {
		times[i] = fmt.Sprintf("%.3f", float64(i)/sampleRate)
	}
	if err := drawLines(filepath.Join(dir, "signal.html"), "Signal", "time (s)", times,
		series{"raw", res.Raw}, series{"cleaned", res.Cleaned}); err != nil {
		return err
	}

	freqs := make([]string, res.RawSpectrum.Bins())
	for i, f := range res.RawSpectrum.Frequencies {
		freqs[i] = fmt.Sprintf("%.2f", f)
	}
	if err := drawLines(filepath.Join(dir, "psd.html"), "Power spectrum", "frequency (Hz)", freqs,
		series{"raw", res.RawSpectrum.Power},
		series{"cleaned", res.CleanedSpectrum.Power}); err != nil {
		return err
	}

	labels := make([]string, len(bands))
	for i, b := range bands {
		labels[i] = fmt.Sprintf("%g-%g", b.Low, b.High)
	}
	return drawBars(filepath.Join(dir, "bands.html"), "Band power", labels,
		series{"raw", res.RawBands}, series{"cleaned", res.CleanedBands})
}

type series struct {
	name   string
	values []float64
}

func drawLines(name, title, xName string, x []string, ss ...series) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
	)
	line.SetXAxis(x)
	for _, s := range ss {
		data := make([]opts.LineData, len(s.values))
		for i, v := range s.values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.name, data)
	}
	return renderTo(name, line.Render)
}

func drawBars(name, title string, x []string, ss ...series) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	bar.SetXAxis(x)
	for _, s := range ss {
		data := make([]opts.BarData, len(s.values))
		for i, v := range s.values {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(s.name, data)
	}
	return renderTo(name, bar.Render)
}

func renderTo(name string, render func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f)
}
