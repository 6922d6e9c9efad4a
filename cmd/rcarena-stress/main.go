package main

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/pavanmanishd/rcarena"
)

func main() {
	app := kingpin.New("rcarena-stress", "Fill an arena, release its handles and check that every reference follows.")

	var (
		segmentSizeSet, countSet, clonesSet bool
	)
	configFile := app.Flag("config.file", "YAML config file.").String()
	segmentSize := app.Flag("arena.segment-size", "Number of values held by each arena segment.").IsSetByUser(&segmentSizeSet).Int()
	count := app.Flag("count", "Number of values to allocate.").IsSetByUser(&countSet).Int()
	clones := app.Flag("clones", "Extra handles cloned before releasing.").IsSetByUser(&clonesSet).Int()
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").Enum("debug", "info", "warn", "error")
	dumpMetrics := app.Flag("metrics", "Print Prometheus metrics after the run.").Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig(*configFile)
	if err != nil {
		exitWithErr(err)
	}
	if segmentSizeSet {
		cfg.Arena.SegmentSize = *segmentSize
	}
	if countSet {
		cfg.Count = *count
	}
	if clonesSet {
		cfg.Clones = *clones
	}

	logger := newLogger(os.Stderr, *logLevel)
	reg := prometheus.NewRegistry()
	res, err := runStress(cfg, logger, rcarena.NewMetrics(reg))
	if err != nil {
		exitWithErr(err)
	}

	printResult(os.Stdout, res)
	if *dumpMetrics {
		if err := writeMetrics(os.Stdout, reg); err != nil {
			exitWithErr(err)
		}
	}
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func printResult(w io.Writer, res result) {
	bold := color.New(color.Bold)
	bold.Fprintln(w, "Arena:")
	fmt.Fprintf(w,
		"\tvalues: %s, segments: %d x %d, capacity: %s, utilization: %.1f%%\n",
		humanize.Comma(int64(res.live.Len)),
		res.live.NumSegments,
		res.live.SegmentSize,
		humanize.Bytes(uint64(res.live.Capacity)*uint64(unsafe.Sizeof(int(0)))),
		res.live.Utilization*100,
	)
	bold.Fprintln(w, "Teardown:")
	fmt.Fprintf(w, "\thandles released: %d, references dead: %s\n", res.released, humanize.Comma(int64(res.dead)))
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
