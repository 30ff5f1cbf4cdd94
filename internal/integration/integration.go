// Package integration embeds the optional shell glue for diskscan.
package integration

import (
	"bytes"
	_ "embed"
	"os/exec"
	"path/filepath"
	"text/template"
)

// ZshFzf is the zsh snippet that pipes diskscan reports into fzf.
//
//go:embed zsh-fzf.sh
var ZshFzf string

// Render fills the script template with the resolved zsh path so the
// emitted snippet can be sourced or executed directly.
func Render() (string, error) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("zsh-fzf").Parse(ZshFzf)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"ZSH": filepath.ToSlash(zsh),
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
