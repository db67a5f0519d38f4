// Package generate renders template files into the project tree at paths
// derived from the config's conventions.
package generate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/fatih/color"

	"github.com/kirimase/kirimase/models"
)

var componentTemplate = template.Must(template.New("component").Parse(`interface {{.Name}}Props {}

export default function {{.Name}}(props: {{.Name}}Props) {
  return (
    <div>
      <h1>Hello World</h1>
    </div>
  );
}
`))

// pascalCase turns user-profile or user_profile into UserProfile.
func pascalCase(s string) string {
	segments := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '/'
	})
	for i, seg := range segments {
		runes := []rune(seg)
		runes[0] = unicode.ToUpper(runes[0])
		segments[i] = string(runes)
	}
	return strings.Join(segments, "")
}

// ComponentPath computes the destination for a named component from the
// config's root path.
func ComponentPath(cfg *models.Config, name string) string {
	return filepath.Join(cfg.RootPath, "components", name+".tsx")
}

// ScaffoldComponent renders the hello-world component template for name and
// writes it unless the file already exists. The success message is printed on
// both branches.
func ScaffoldComponent(cfg *models.Config, name string) error {
	data := struct{ Name string }{Name: pascalCase(name)}

	var buf bytes.Buffer
	if err := componentTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render component template: %w", err)
	}

	path := ComponentPath(cfg, name)
	if _, err := WriteIfAbsent(path, buf.Bytes()); err != nil {
		return err
	}

	color.Green("Successfully generated component at %s", path)
	return nil
}
