// Command sigcond generates a test signal, conditions it through the notch
// and low-pass chain, and reports raw versus cleaned band powers. Optionally
// renders the signals, spectra and band powers as HTML charts.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/fieldline/sigcond/dsp/band"
	"github.com/fieldline/sigcond/dsp/pipeline"
	"github.com/fieldline/sigcond/dsp/signal"
	"github.com/fieldline/sigcond/internal/mains"
	"github.com/fieldline/sigcond/internal/report"
)

func main() {
	var (
		sampleRate float64
		duration   float64

		signalFreq      float64
		signalAmp       float64
		interferenceAmp float64
		noiseAmp        float64
		seed            int64

		notchFreq float64
		notchQ    float64
		autoNotch bool
		cutoff    float64
		order     int
		bandLimit float64
		bandCount int
		chartsDir string
	)

	app := &cli.App{
		Name:                 "sigcond",
		Usage:                "Condition a noisy signal and compare band powers",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:        "sample-rate",
				Aliases:     []string{"r"},
				Usage:       "Sample rate in Hz",
				Value:       200,
				Destination: &sampleRate,
			},
			&cli.Float64Flag{
				Name:        "duration",
				Aliases:     []string{"d"},
				Usage:       "Signal duration in seconds",
				Value:       5,
				Destination: &duration,
			},
			&cli.Float64Flag{
				Name:        "signal-freq",
				Usage:       "Frequency of the wanted component in Hz",
				Value:       5,
				Destination: &signalFreq,
			},
			&cli.Float64Flag{
				Name:        "signal-amp",
				Usage:       "Amplitude of the wanted component",
				Value:       0.8,
				Destination: &signalAmp,
			},
			&cli.Float64Flag{
				Name:        "interference-amp",
				Usage:       "Amplitude of the interference tone",
				Value:       0.5,
				Destination: &interferenceAmp,
			},
			&cli.Float64Flag{
				Name:        "noise-amp",
				Usage:       "Amplitude of the white noise floor",
				Value:       0.2,
				Destination: &noiseAmp,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "Noise generator seed",
				Value:       1,
				Destination: &seed,
			},
			&cli.Float64Flag{
				Name:        "notch-freq",
				Aliases:     []string{"n"},
				Usage:       "Notch target frequency in Hz (also the simulated interference tone)",
				Value:       pipeline.DefaultNotchFreq,
				Destination: &notchFreq,
			},
			&cli.BoolFlag{
				Name:        "auto-notch",
				Usage:       "Target the local mains frequency detected from the host timezone",
				Destination: &autoNotch,
			},
			&cli.Float64Flag{
				Name:        "notch-q",
				Usage:       "Notch quality factor",
				Value:       pipeline.DefaultNotchQ,
				Destination: &notchQ,
			},
			&cli.Float64Flag{
				Name:        "cutoff",
				Aliases:     []string{"c"},
				Usage:       "Low-pass cutoff frequency in Hz",
				Value:       pipeline.DefaultLowpassFreq,
				Destination: &cutoff,
			},
			&cli.IntFlag{
				Name:        "order",
				Usage:       "Low-pass filter order",
				Value:       pipeline.DefaultLowpassOrder,
				Destination: &order,
			},
			&cli.Float64Flag{
				Name:        "band-limit",
				Usage:       "Upper edge of the band partition in Hz",
				Value:       pipeline.DefaultBandLimit,
				Destination: &bandLimit,
			},
			&cli.IntFlag{
				Name:        "band-count",
				Usage:       "Number of equal-width bands",
				Value:       pipeline.DefaultBandCount,
				Destination: &bandCount,
			},
			&cli.StringFlag{
				Name:        "charts-dir",
				Usage:       "Directory for HTML chart output (empty disables charts)",
				Destination: &chartsDir,
			},
		},
		Action: func(cCtx *cli.Context) error {
			if autoNotch {
				notchFreq = mains.Frequency()
				log.WithField("freq", notchFreq).Info("using detected mains frequency")
			}

			gen, err := signal.NewGenerator(sampleRate, signal.WithSeed(seed))
			if err != nil {
				return err
			}
			samples := int(sampleRate * duration)
			wanted, err := gen.Sine(signalFreq, signalAmp, samples)
			if err != nil {
				return err
			}
			interference, err := gen.Sine(notchFreq, interferenceAmp, samples)
			if err != nil {
				return err
			}
			noise, err := gen.WhiteNoise(noiseAmp, samples)
			if err != nil {
				return err
			}
			sig, err := signal.Mix(wanted, interference, noise)
			if err != nil {
				return err
			}

			bands, err := band.Split(0, bandLimit, bandCount)
			if err != nil {
				return err
			}
			analyzer, err := pipeline.New(sampleRate,
				pipeline.WithNotch(notchFreq, notchQ),
				pipeline.WithLowpass(cutoff, order),
				pipeline.WithBands(bands),
			)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"samples": samples,
				"notch":   notchFreq,
				"cutoff":  cutoff,
				"order":   order,
			}).Info("running conditioning chain")

			res, err := analyzer.Run(sig)
			if err != nil {
				return err
			}

			table, err := report.BandPowers(bands, res.RawBands, res.CleanedBands)
			if err != nil {
				return err
			}
			fmt.Print(table)

			if chartsDir != "" {
				if err := writeCharts(chartsDir, sampleRate, bands, res); err != nil {
					return err
				}
				log.WithField("dir", chartsDir).Info("charts written")
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
