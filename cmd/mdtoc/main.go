package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"mdtoc/pkg/config"
	"mdtoc/pkg/diff"
	"mdtoc/pkg/format"
	"mdtoc/pkg/toc"
	"mdtoc/pkg/utils"
)

const version = "0.3.0"

// options collects the parsed command-line flags.
type options struct {
	output       string
	inPlace      bool
	check        bool
	formatName   string
	bullet       string
	beginMarker  string
	endMarker    string
	includeTitle bool
	configFile   string
	logLevel     string
	showVersion  bool
}

func main() {
	opts, inputs, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		// flag package already printed the problem and usage
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("mdtoc %s\n", version)
		return
	}

	log := setupLogger(opts.logLevel)

	if err := run(opts, inputs, log); err != nil {
		// A pipe error occurs when the consumer of this process's output has
		// hung up. This is a normal event and we should quit gracefully.
		if utils.IsPipeError(err) {
			log.Info("pipe error, quitting gracefully")
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, []string, error) {
	var opts options

	fs := flag.NewFlagSet("mdtoc", flag.ContinueOnError)
	fs.StringVar(&opts.output, "o", "", "Output Markdown file to write (default: stdout)")
	fs.StringVar(&opts.output, "output", "", "Output Markdown file to write (default: stdout)")
	fs.BoolVar(&opts.inPlace, "i", false, "Edit input files in place")
	fs.BoolVar(&opts.inPlace, "in-place", false, "Edit input files in place")
	fs.BoolVar(&opts.check, "check", false, "Exit non-zero when a table of contents is out of date, printing a diff")
	fs.StringVar(&opts.formatName, "f", "", "Entry formatting: alternating, asterisks, dashes, numbers, or pluses (default: alternating)")
	fs.StringVar(&opts.formatName, "format", "", "Entry formatting: alternating, asterisks, dashes, numbers, or pluses (default: alternating)")
	fs.StringVar(&opts.bullet, "bullet", "", "Custom literal bullet for every entry, overrides -f")
	fs.StringVar(&opts.beginMarker, "b", "", fmt.Sprintf("Custom begin marker (default: %q)", toc.DefaultBeginMarker))
	fs.StringVar(&opts.beginMarker, "begin-marker", "", fmt.Sprintf("Custom begin marker (default: %q)", toc.DefaultBeginMarker))
	fs.StringVar(&opts.endMarker, "e", "", fmt.Sprintf("Custom end marker (default: %q)", toc.DefaultEndMarker))
	fs.StringVar(&opts.endMarker, "end-marker", "", fmt.Sprintf("Custom end marker (default: %q)", toc.DefaultEndMarker))
	fs.BoolVar(&opts.includeTitle, "include-title", false, "Keep level-1 headings in the table of contents")
	fs.StringVar(&opts.configFile, "config", "", "Path to a YAML config file with flag defaults")
	fs.StringVar(&opts.logLevel, "loglevel", "warn", "Log level (debug, info, warn, error, fatal)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version info")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `mdtoc - Markdown table of contents generator

Generates and writes a table of contents into any Markdown document,
between a %q and a %q marker comment. Only the begin
marker is needed to insert a table of contents the first time; later
runs replace the region between the markers.

Usage:
  mdtoc [options] [FILE ...]

With no FILE, mdtoc reads from standard input and writes to standard
output. Multiple FILEs require -i or -check.

Options:
`, toc.DefaultBeginMarker, toc.DefaultEndMarker)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  mdtoc -i README.md
  mdtoc -check docs/*.md
  tool1 < in.md | mdtoc | tool3 > out.md
`)
	}

	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}

// setupLogger creates a configured logrus.Logger with the given log level.
// Logs go to stderr so they never mix with document output on stdout.
func setupLogger(logLevelStr string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	log.SetLevel(logrus.WarnLevel)

	level, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		log.Warnf("Invalid log level '%s', using default 'warn'. Error: %v", logLevelStr, err)
	} else {
		log.SetLevel(level)
	}

	return log
}

// buildTocConfig merges the optional config file with command-line flags;
// flags win wherever both supply a value.
func buildTocConfig(opts options, log *logrus.Logger) (toc.Config, error) {
	fileCfg := &config.Config{}
	if opts.configFile != "" {
		loaded, err := config.Load(opts.configFile)
		if err != nil {
			return toc.Config{}, err
		}
		warnings, err := loaded.Validate()
		for _, w := range warnings {
			log.Warn(w)
		}
		if err != nil {
			return toc.Config{}, err
		}
		fileCfg = loaded
	}

	if opts.formatName != "" {
		fileCfg.Format = opts.formatName
		fileCfg.CustomBullet = ""
	}
	if opts.bullet != "" {
		fileCfg.CustomBullet = opts.bullet
	}
	if opts.beginMarker != "" {
		fileCfg.BeginMarker = opts.beginMarker
	}
	if opts.endMarker != "" {
		fileCfg.EndMarker = opts.endMarker
	}
	if opts.includeTitle {
		fileCfg.IncludeTitle = true
	}

	style := fileCfg.Style()
	if fileCfg.CustomBullet == "" {
		var err error
		style, err = format.Parse(fileCfg.Format)
		if err != nil {
			return toc.Config{}, utils.WrapErrorf(utils.ErrConfigValidation, "%v", err)
		}
	}

	cfg := toc.Config{
		BeginMarker: fileCfg.BeginMarker,
		EndMarker:   fileCfg.EndMarker,
		Style:       style,
	}
	if fileCfg.IncludeTitle {
		cfg.Transform = toc.AllHeadings
	}
	return cfg, nil
}

func validateModes(opts options, inputs []string) error {
	if opts.output != "" && opts.inPlace {
		return utils.WrapErrorf(utils.ErrConfigValidation, "-o conflicts with -i")
	}
	if opts.check && (opts.output != "" || opts.inPlace) {
		return utils.WrapErrorf(utils.ErrConfigValidation, "-check conflicts with -o and -i")
	}
	if len(inputs) > 1 && !opts.inPlace && !opts.check {
		return utils.WrapErrorf(utils.ErrConfigValidation,
			"multiple input files require -i or -check")
	}
	if opts.output != "" && len(inputs) > 1 {
		return utils.WrapErrorf(utils.ErrConfigValidation,
			"-o cannot be used with multiple input files")
	}
	return nil
}

func run(opts options, inputs []string, log *logrus.Logger) error {
	if err := validateModes(opts, inputs); err != nil {
		return err
	}

	cfg, err := buildTocConfig(opts, log)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return processStdin(cfg, opts, log)
	}

	// Every file is rendered independently, so fan out. Diff output shares
	// stderr and is serialized with a mutex.
	var (
		g        errgroup.Group
		stderrMu sync.Mutex
		outdated bool
	)
	for _, path := range inputs {
		path := path
		g.Go(func() error {
			differs, err := processFile(cfg, opts, path, &stderrMu, log)
			if err != nil {
				return err
			}
			if differs {
				stderrMu.Lock()
				outdated = true
				stderrMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if outdated {
		return utils.ErrTocOutdated
	}
	return nil
}

func processStdin(cfg toc.Config, opts options, log *logrus.Logger) error {
	if opts.inPlace {
		log.Debug("no input file, -i ignored, writing to stdout")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return utils.WrapErrorf(err, "read stdin")
	}
	source := string(data)

	generated, err := toc.RenderString(cfg, source)
	if err != nil {
		return err
	}

	switch {
	case opts.check:
		differs, err := diff.Write(os.Stderr, "<stdin>", source, generated)
		if err != nil {
			return err
		}
		if differs {
			return utils.ErrTocOutdated
		}
		return nil
	case opts.output != "":
		return writeToFile(opts.output, generated)
	default:
		log.Info("writing to stdout")
		_, err := io.WriteString(os.Stdout, generated)
		return err
	}
}

// processFile renders a single input file according to the selected mode and
// reports whether check mode found it out of date.
func processFile(cfg toc.Config, opts options, path string, stderrMu *sync.Mutex, log *logrus.Logger) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, utils.WrapErrorf(utils.ErrFilesystem, "read %q: %v", path, err)
	}
	source := string(data)

	generated, err := toc.RenderString(cfg, source)
	if err != nil {
		return false, utils.WrapErrorf(err, "render %q", path)
	}

	switch {
	case opts.check:
		stderrMu.Lock()
		defer stderrMu.Unlock()
		return diff.Write(os.Stderr, path, source, generated)
	case opts.inPlace:
		if generated == source {
			log.Debugf("%s unchanged", path)
			return false, nil
		}
		log.Infof("writing to file; file=%q", path)
		if err := writeFilePreservingMode(path, generated); err != nil {
			return false, err
		}
		return false, nil
	case opts.output != "":
		log.Infof("writing to file; file=%q", opts.output)
		return false, writeToFile(opts.output, generated)
	default:
		log.Info("writing to stdout")
		_, err := io.WriteString(os.Stdout, generated)
		return false, err
	}
}

func writeToFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return utils.WrapErrorf(utils.ErrFilesystem, "write %q: %v", path, err)
	}
	return nil
}

// writeFilePreservingMode rewrites path keeping its existing permission bits.
func writeFilePreservingMode(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return utils.WrapErrorf(utils.ErrFilesystem, "write %q: %v", path, err)
	}
	return nil
}
