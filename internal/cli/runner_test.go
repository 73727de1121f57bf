package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/memtodo/internal/store/memstore"
)

func run(args []string, input string, opt Options) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	opt.In = strings.NewReader(input)
	opt.Out = &out
	opt.Err = &errOut
	code = Run(args, opt)
	return code, out.String(), errOut.String()
}

func TestRunDefaultsToShell(t *testing.T) {
	st := memstore.New()
	code, out, _ := run(nil, script("1", "Buy milk", "6"), Options{Store: st})
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, Menu)
	assert.Equal(t, 1, st.Len())
}

func TestRunSubcommands(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		input      string
		opt        Options
		wantCode   int
		wantOut    string
		wantErrOut string
	}{
		{name: "help", args: []string{"help"}, wantCode: ExitOK, wantOut: "Subcommands:"},
		{name: "dash help", args: []string{"--help"}, wantCode: ExitOK, wantOut: "Usage:"},
		{name: "version", args: []string{"version"}, opt: Options{Version: "1.2.3"}, wantCode: ExitOK, wantOut: "todo 1.2.3"},
		{name: "explicit shell", args: []string{"shell"}, input: script("6"), wantCode: ExitOK, wantOut: Menu},
		{name: "shell extra args", args: []string{"shell", "x"}, wantCode: ExitUsage, wantErrOut: "usage: todo shell"},
		{name: "tui extra args", args: []string{"tui", "x"}, wantCode: ExitUsage, wantErrOut: "usage: todo tui"},
		{name: "unknown", args: []string{"frobnicate"}, wantCode: ExitUsage, wantErrOut: "unknown subcommand: frobnicate"},
		{
			name:       "strict malformed input",
			input:      script("2", "x"),
			opt:        Options{Strict: true},
			wantCode:   ExitError,
			wantErrOut: "malformed input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := run(tt.args, tt.input, tt.opt)
			assert.Equal(t, tt.wantCode, code)
			if tt.wantOut != "" {
				assert.Contains(t, out, tt.wantOut)
			}
			if tt.wantErrOut != "" {
				assert.Contains(t, errOut, tt.wantErrOut)
			}
		})
	}
}
