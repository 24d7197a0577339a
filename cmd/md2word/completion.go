package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2word"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// markdownGlobs are the input patterns offered for file arguments.
var markdownGlobs = []string{"*.md", "*.markdown", "*.mdown", "*.mkd"}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file, optionally filtered by glob
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	TakesFiles bool // accepts a Markdown file argument
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsFile   bool
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
func flagCompletionMeta() map[string]completionMeta {
	return map[string]completionMeta{
		"font-family": {Values: md2word.FontFamilies},
		"font-size":   {Values: md2word.FontSizes},
		"line-height": {Values: md2word.LineHeights},
		"align":       {Values: md2word.Alignments},
		"config":      {FileGlob: "*.yaml,*.yml"},
		"output":      {IsFile: true},
		"asset-path":  {IsDir: true},
	}
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if m, ok := meta[f.Name]; ok {
			switch {
			case len(m.Values) > 0:
				fd.Type = flagEnum
				fd.Values = m.Values
			case m.FileGlob != "" || m.IsFile:
				fd.Type = flagFile
				fd.FileGlob = m.FileGlob
			case m.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "convert", Desc: "Convert Markdown to a .docx file", TakesFiles: true,
			Flags: extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{}, io.Discard))},
		{Name: "html", Desc: "Print preview or clipboard HTML", TakesFiles: true,
			Flags: extractFlagsFromFlagSet(newHTMLFlagSet(&htmlFlags{}, io.Discard))},
		{Name: "copy", Desc: "Copy Markdown to the clipboard", TakesFiles: true,
			Flags: extractFlagsFromFlagSet(newCopyFlagSet(&copyFlags{}, io.Discard))},
		{Name: "serve", Desc: "Start the local preview server",
			Flags: extractFlagsFromFlagSet(newServeFlagSet(&serveFlags{}, io.Discard))},
		{Name: "config", Desc: "Print the effective configuration",
			Flags: extractFlagsFromFlagSet(newConfigFlagSet(&configFlags{}, io.Discard))},
		{Name: "doctor", Desc: "Check clipboard tools and configuration",
			Flags: extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{}, io.Discard))},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(getCommands())
	case ShellZsh:
		script = zshScript(getCommands())
	case ShellFish:
		script = fishScript(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2word completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2word completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(md2word completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2word completion fish > ~/.config/fish/completions/md2word.fish")
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashScript(cmds []commandDef) string {
	var sb strings.Builder
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}

	sb.WriteString("# bash completion for md2word\n")
	sb.WriteString("_md2word() {\n")
	sb.WriteString("    local IFS=$'\\n'\n")
	sb.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	sb.WriteString("    local prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	sb.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(&sb, "        COMPREPLY=($(compgen -W %s -- \"$cur\"))\n", bashWords(names))
	sb.WriteString("        return\n")
	sb.WriteString("    fi\n")
	sb.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, c := range cmds {
		if c.Name == "completion" {
			sb.WriteString("    completion)\n")
			fmt.Fprintf(&sb, "        COMPREPLY=($(compgen -W %s -- \"$cur\"))\n", bashWords([]string{"bash", "zsh", "fish"}))
			sb.WriteString("        ;;\n")
			continue
		}
		if c.Name == "help" {
			sb.WriteString("    help)\n")
			fmt.Fprintf(&sb, "        COMPREPLY=($(compgen -W %s -- \"$cur\"))\n", bashWords(names))
			sb.WriteString("        ;;\n")
			continue
		}
		if len(c.Flags) == 0 && !c.TakesFiles {
			continue
		}

		fmt.Fprintf(&sb, "    %s)\n", c.Name)
		sb.WriteString("        case \"$prev\" in\n")
		var all []string
		for _, f := range c.Flags {
			all = append(all, "--"+f.Long)
			if f.Short != "" {
				all = append(all, "-"+f.Short)
			}
			reply := ""
			switch f.Type {
			case flagEnum:
				reply = "compgen -W " + bashWords(f.Values) + " -- \"$cur\""
			case flagFile:
				reply = "compgen -f -- \"$cur\""
			case flagDir:
				reply = "compgen -d -- \"$cur\""
			case flagString:
				reply = "true"
			default:
				continue
			}
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			fmt.Fprintf(&sb, "        %s) COMPREPLY=($(%s)); return ;;\n", pattern, reply)
		}
		sb.WriteString("        esac\n")
		sb.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&sb, "            COMPREPLY=($(compgen -W %s -- \"$cur\"))\n", bashWords(all))
		if c.TakesFiles {
			sb.WriteString("        else\n")
			sb.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
		}
		sb.WriteString("        fi\n")
		sb.WriteString("        ;;\n")
	}

	sb.WriteString("    esac\n")
	sb.WriteString("}\n")
	sb.WriteString("complete -o filenames -F _md2word md2word\n")
	return sb.String()
}

// bashWords renders a newline-separated word list for compgen -W.
func bashWords(words []string) string {
	return "$'" + strings.ReplaceAll(strings.Join(words, "\\n"), "'", "\\'") + "'"
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func zshScript(cmds []commandDef) string {
	var sb strings.Builder

	sb.WriteString("#compdef md2word\n\n")
	sb.WriteString("_md2word() {\n")
	sb.WriteString("    local -a commands\n")
	sb.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&sb, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	sb.WriteString("    )\n\n")
	sb.WriteString("    if (( CURRENT == 2 )); then\n")
	sb.WriteString("        _describe 'command' commands\n")
	sb.WriteString("        return\n")
	sb.WriteString("    fi\n\n")
	sb.WriteString("    case $words[2] in\n")

	for _, c := range cmds {
		switch c.Name {
		case "completion":
			sb.WriteString("    completion)\n        _values 'shell' bash zsh fish\n        ;;\n")
			continue
		case "help":
			sb.WriteString("    help)\n        _describe 'command' commands\n        ;;\n")
			continue
		}
		if len(c.Flags) == 0 && !c.TakesFiles {
			continue
		}

		fmt.Fprintf(&sb, "    %s)\n", c.Name)
		sb.WriteString("        _arguments -s \\\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&sb, "            %s \\\n", zshFlagSpec(f))
		}
		if c.TakesFiles {
			sb.WriteString("            '1:markdown file:_files -g \"*.(md|markdown|mdown|mkd)\"' \\\n")
		}
		sb.WriteString("            && return\n")
		sb.WriteString("        ;;\n")
	}

	sb.WriteString("    esac\n")
	sb.WriteString("}\n\n")
	sb.WriteString("compdef _md2word md2word\n")
	return sb.String()
}

func zshFlagSpec(f flagDef) string {
	desc := "[" + zshEscape(f.Desc) + "]"
	action := ""
	switch f.Type {
	case flagEnum:
		quoted := make([]string, len(f.Values))
		for i, v := range f.Values {
			quoted[i] = strings.ReplaceAll(v, " ", `\ `)
		}
		action = ":value:(" + strings.Join(quoted, " ") + ")"
	case flagFile:
		action = ":file:_files"
		if f.FileGlob != "" {
			globs := strings.Split(f.FileGlob, ",")
			for i, g := range globs {
				globs[i] = strings.TrimPrefix(g, "*.")
			}
			action = `:file:_files -g "*.(` + strings.Join(globs, "|") + `)"`
		}
	case flagDir:
		action = ":directory:_files -/"
	case flagString:
		action = ":value: "
	}

	if f.Short == "" {
		return "'--" + f.Long + desc + action + "'"
	}
	return "'(-" + f.Short + " --" + f.Long + ")'{-" + f.Short + ",--" + f.Long + "}'" + desc + action + "'"
}

// zshEscape escapes characters with meaning in _arguments specs.
func zshEscape(s string) string {
	r := strings.NewReplacer(`'`, `'\''`, `:`, `\:`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func fishScript(cmds []commandDef) string {
	var sb strings.Builder
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}

	sb.WriteString("# fish completion for md2word\n")
	sb.WriteString("complete -c md2word -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&sb, "complete -c md2word -n '__fish_use_subcommand' -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}
	fmt.Fprintf(&sb, "complete -c md2word -n '__fish_seen_subcommand_from help' -a %s\n", fishQuote(strings.Join(names, " ")))
	sb.WriteString("complete -c md2word -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'\n")

	for _, c := range cmds {
		cond := "'__fish_seen_subcommand_from " + c.Name + "'"
		if c.TakesFiles {
			fmt.Fprintf(&sb, "complete -c md2word -n %s -F\n", cond)
		}
		for _, f := range c.Flags {
			line := "complete -c md2word -n " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long + " -d " + fishQuote(f.Desc)
			switch f.Type {
			case flagEnum:
				quoted := make([]string, len(f.Values))
				for i, v := range f.Values {
					quoted[i] = `\"` + v + `\"`
				}
				line += " -x -a " + `"` + strings.Join(quoted, " ") + `"`
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString:
				line += " -x"
			}
			sb.WriteString(line + "\n")
		}
	}
	return sb.String()
}

func fishQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
