package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2word"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2word <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert Markdown to a .docx file")
	fmt.Fprintln(w, "  html       Print preview or clipboard HTML")
	fmt.Fprintln(w, "  copy       Copy Markdown to the clipboard, ready to paste into Word")
	fmt.Fprintln(w, "  serve      Start the local preview server")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  doctor     Check clipboard tools and configuration")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2word help <command>' for details on a specific command.")
}

// printInputArgument documents the shared input argument.
func printInputArgument(w io.Writer) {
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or '-' / omitted to read stdin")
	fmt.Fprintln(w)
}

// printStyleFlags documents the shared typography flags.
func printStyleFlags(w io.Writer) {
	fmt.Fprintln(w, "Style:")
	fmt.Fprintf(w, "      --font-family <s>     %s\n", strings.Join(md2word.FontFamilies, ", "))
	fmt.Fprintf(w, "      --font-size <s>       %s\n", strings.Join(md2word.FontSizes, ", "))
	fmt.Fprintf(w, "      --line-height <s>     %s\n", strings.Join(md2word.LineHeights, ", "))
	fmt.Fprintf(w, "      --align <s>           %s\n", strings.Join(md2word.Alignments, ", "))
	fmt.Fprintln(w, "      --regional            German academic preset (Palatino 11pt, justified)")
	fmt.Fprintln(w, "      --highlight           Syntax highlighting for fenced code")
	fmt.Fprintln(w)
}

// printCommonFlags documents the shared output control flags.
func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2word convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to a Word document.")
	fmt.Fprintln(w)
	printInputArgument(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (default: name from title)")
	fmt.Fprintln(w, "  -t, --title <s>           Document title (default \"Markdown Document\")")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/styles.tmpl")
	fmt.Fprintln(w)
	printStyleFlags(w)
	printCommonFlags(w)
}

// printHTMLUsage prints usage for the html command.
func printHTMLUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2word html [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the rendered HTML. With --styled, print the HTML put on the clipboard.")
	fmt.Fprintln(w)
	printInputArgument(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default stdout)")
	fmt.Fprintln(w, "      --styled              Inline styles for pasting into Word")
	fmt.Fprintln(w)
	printStyleFlags(w)
	printCommonFlags(w)
}

// printCopyUsage prints usage for the copy command.
func printCopyUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2word copy [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Copy styled HTML to the clipboard. Falls back to plain text when")
	fmt.Fprintln(w, "rich clipboard content is unavailable.")
	fmt.Fprintln(w)
	printInputArgument(w)
	printStyleFlags(w)
	printCommonFlags(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2word serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Start the preview server. Stop with Ctrl+C.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "      --addr <host:port>    Listen address (default 127.0.0.1:8080)")
	fmt.Fprintln(w, "  -t, --title <s>           Default document title")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/*.tmpl overrides")
	fmt.Fprintln(w)
	printStyleFlags(w)
	printCommonFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2word config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after applying the config file and")
	fmt.Fprintln(w, "MD2WORD_* environment variables.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2word doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that the clipboard, the configuration and the output")
	fmt.Fprintln(w, "directory are usable. Exits 1 when a check fails.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --json                Print the report as JSON")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "html":
		printHTMLUsage(env.Stdout)
	case "copy":
		printCopyUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2word version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2word help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
