package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds typography flags.
type styleFlags struct {
	fontFamily string
	fontSize   string
	lineHeight string
	align      string
	regional   bool
	highlight  bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	style     styleFlags
	output    string
	title     string
	assetPath string
}

// htmlFlags holds flags for the html command.
type htmlFlags struct {
	common commonFlags
	style  styleFlags
	output string
	styled bool
}

// copyFlags holds flags for the copy command.
type copyFlags struct {
	common commonFlags
	style  styleFlags
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common    commonFlags
	style     styleFlags
	addr      string
	title     string
	assetPath string
}

// configFlags holds flags for the config command.
type configFlags struct {
	common commonFlags
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	config string
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addStyleFlags adds typography flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.fontFamily, "font-family", "", "font family, e.g. Georgia")
	fs.StringVar(&f.fontSize, "font-size", "", "font size, e.g. 14px or 11pt")
	fs.StringVar(&f.lineHeight, "line-height", "", "line height: 1, 1.15, 1.5, 2")
	fs.StringVar(&f.align, "align", "", "text alignment: left, justify, center, right")
	fs.BoolVar(&f.regional, "regional", false, "German academic preset")
	fs.BoolVar(&f.highlight, "highlight", false, "syntax highlighting for fenced code")
}

// newFlagSet returns a FlagSet that reports errors to the caller instead
// of printing them, and prints usage on -h.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parse runs fs.Parse and wraps errors other than -h as usage errors.
func parse(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

// newConvertFlagSet registers the convert flags into f.
func newConvertFlagSet(f *convertFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("convert", w, printConvertUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.title, "title", "t", "", "document title")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template directory")
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	return fs
}

// newHTMLFlagSet registers the html flags into f.
func newHTMLFlagSet(f *htmlFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("html", w, printHTMLUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.BoolVar(&f.styled, "styled", false, "inline styles as pasted into Word")
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	return fs
}

// newCopyFlagSet registers the copy flags into f.
func newCopyFlagSet(f *copyFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("copy", w, printCopyUsage)
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	return fs
}

// newServeFlagSet registers the serve flags into f.
func newServeFlagSet(f *serveFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("serve", w, printServeUsage)
	fs.StringVar(&f.addr, "addr", "", "listen address (default 127.0.0.1:8080)")
	fs.StringVarP(&f.title, "title", "t", "", "default document title")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template directory")
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	return fs
}

// newConfigFlagSet registers the config flags into f.
func newConfigFlagSet(f *configFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("config", w, printConfigUsage)
	addCommonFlags(fs, &f.common)
	return fs
}

// newDoctorFlagSet registers the doctor flags into f.
func newDoctorFlagSet(f *doctorFlags, w io.Writer) *flag.FlagSet {
	fs := newFlagSet("doctor", w, printDoctorUsage)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	rest, err := parse(newConvertFlagSet(f, w), args)
	return f, rest, err
}

// parseHTMLFlags parses html command flags and returns positional args.
func parseHTMLFlags(args []string, w io.Writer) (*htmlFlags, []string, error) {
	f := &htmlFlags{}
	rest, err := parse(newHTMLFlagSet(f, w), args)
	return f, rest, err
}

// parseCopyFlags parses copy command flags and returns positional args.
func parseCopyFlags(args []string, w io.Writer) (*copyFlags, []string, error) {
	f := &copyFlags{}
	rest, err := parse(newCopyFlagSet(f, w), args)
	return f, rest, err
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, w io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	rest, err := parse(newServeFlagSet(f, w), args)
	return f, rest, err
}

// parseConfigFlags parses config command flags and returns positional args.
func parseConfigFlags(args []string, w io.Writer) (*configFlags, []string, error) {
	f := &configFlags{}
	rest, err := parse(newConfigFlagSet(f, w), args)
	return f, rest, err
}

// parseDoctorFlags parses doctor command flags and returns positional args.
func parseDoctorFlags(args []string, w io.Writer) (*doctorFlags, []string, error) {
	f := &doctorFlags{}
	rest, err := parse(newDoctorFlagSet(f, w), args)
	return f, rest, err
}
