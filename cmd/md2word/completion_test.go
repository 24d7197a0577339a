package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()
	byName := map[string]commandDef{}
	for _, c := range cmds {
		byName[c.Name] = c
		if !isCommand(c.Name) {
			t.Errorf("completion lists %q but runMain does not dispatch it", c.Name)
		}
	}

	convert, ok := byName["convert"]
	if !ok || !convert.TakesFiles {
		t.Fatalf("convert = %+v", convert)
	}

	flags := map[string]flagDef{}
	for _, f := range convert.Flags {
		flags[f.Long] = f
	}
	tests := []struct {
		long  string
		short string
		typ   flagType
	}{
		{"output", "o", flagFile},
		{"title", "t", flagString},
		{"font-size", "", flagEnum},
		{"regional", "", flagBool},
		{"config", "c", flagFile},
		{"asset-path", "", flagDir},
	}
	for _, tt := range tests {
		f, ok := flags[tt.long]
		if !ok {
			t.Errorf("convert flag --%s missing", tt.long)
			continue
		}
		if f.Short != tt.short || f.Type != tt.typ {
			t.Errorf("--%s = %+v, want short %q type %d", tt.long, f, tt.short, tt.typ)
		}
	}
	if got := flags["align"].Values; len(got) != 4 {
		t.Errorf("--align values = %v", got)
	}
}

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell Shell
		want  []string
	}{
		{ShellBash, []string{"complete -o filenames -F _md2word md2word", "--font-family", "Times New Roman", "serve)"}},
		{ShellZsh, []string{"#compdef md2word", `Times\ New\ Roman`, `default 127.0.0.1\:8080`, "_files -/"}},
		{ShellFish, []string{"complete -c md2word -f", "-l regional", `\"Palatino Linotype\"`, "__fish_complete_directories"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}

	if err := GenerateCompletion(&bytes.Buffer{}, "tcsh"); !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("tcsh error = %v, want ErrUnsupportedShell", err)
	}
}

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	if code := runMain([]string{"md2word", "completion"}, env.Environment); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(env.stdout.String(), "Usage: md2word completion <shell>") {
		t.Errorf("stdout = %q", env.stdout.String())
	}

	env = newTestEnv(t)
	if code := runMain([]string{"md2word", "completion", "tcsh"}, env.Environment); code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}
