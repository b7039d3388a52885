package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/devkit-labs/devkit/internal/errdefs"
)

// Kind selects which template pair the generator renders.
type Kind string

const (
	KindService Kind = "service"
	KindUtil    Kind = "util"
)

//go:embed templates
var templateFS embed.FS

// ValidKinds lists the accepted kinds in display order.
func ValidKinds() []string {
	return []string{string(KindService), string(KindUtil)}
}

// ParseKind validates a raw kind argument against the fixed enumeration.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindService, KindUtil:
		return Kind(raw), nil
	}
	return "", errdefs.InvalidKind(raw, ValidKinds())
}

// subDir returns the per-kind subdirectory used under src/ and tests/.
func (k Kind) subDir() string {
	if k == KindService {
		return "services"
	}
	return "utils"
}

// RenderTemplate renders the implementation file for a kind.
func RenderTemplate(kind Kind, c Casings) (string, error) {
	return render(string(kind)+".ts.tmpl", c)
}

// RenderTestTemplate renders the companion test file for a kind. The test
// references exactly the symbols the implementation template exports.
func RenderTestTemplate(kind Kind, c Casings) (string, error) {
	return render(string(kind)+".test.ts.tmpl", c)
}

func render(name string, c Casings) (string, error) {
	tmplBytes, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
