// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package familygen

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"golang.org/x/tools/imports"
)

// VariantImportPath is the import path of the container package that
// generated code builds on.
const VariantImportPath = "code.hybscloud.com/variant"

// resolvedFamily is a family with its payload resolved.
type resolvedFamily struct {
	Family
	Payload *Payload
}

// fileContext is the data passed to the file template.
type fileContext struct {
	Package  string
	Imports  []string
	Families []familyContext
}

// familyContext is the data for one generated type.
type familyContext struct {
	Name      string
	Payload   string
	Optional  bool
	Alias     bool
	WordSized bool
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by variantgen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{range .Families}}
{{- if .Optional}}
{{- if .Alias}}
// {{.Name}} is the monomorphic Optional form for {{.Payload}}.
type {{.Name}} = variant.OptionOf[{{.Payload}}]
{{- else}}
// {{.Name}} is the monomorphic Optional form for {{.Payload}}.
type {{.Name}} struct {
	Value   {{.Payload}}
	HasSome bool
}

// {{.Name}}From relabels an erased Optional as {{.Name}}.
func {{.Name}}From(o variant.Optional) {{.Name}} {
	return {{.Name}}(variant.CastOptional[{{.Payload}}](o))
}

// Erase returns o in its erased form.
func (o {{.Name}}) Erase() variant.Optional {
	return variant.OptionOf[{{.Payload}}](o).Erase()
}

// Get returns the payload and true, or zero and false.
func (o {{.Name}}) Get() ({{.Payload}}, bool) {
	return variant.OptionOf[{{.Payload}}](o).Get()
}
{{- end}}
{{- else}}
{{- if .Alias}}
// {{.Name}} is the monomorphic Result form for {{.Payload}}.
type {{.Name}} = variant.ResultOf[{{.Payload}}]
{{- else}}
// {{.Name}} is the monomorphic Result form for {{.Payload}}.
type {{.Name}} struct {
	Unwrap {{.Payload}}
	Error  variant.Code
}

// {{.Name}}From relabels an erased Result as {{.Name}}.
func {{.Name}}From(r variant.Result) {{.Name}} {
	return {{.Name}}(variant.CastResult[{{.Payload}}](r))
}

// Erase returns r in its erased form.
func (r {{.Name}}) Erase() variant.Result {
	return variant.ResultOf[{{.Payload}}](r).Erase()
}

// Get returns the payload and a nil error, or zero and the error code.
func (r {{.Name}}) Get() ({{.Payload}}, error) {
	return variant.ResultOf[{{.Payload}}](r).Get()
}
{{- end}}
{{- end}}
{{- if .WordSized}}

// {{.Name}} payloads must fit one pointer-sized slot.
const _ = unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(*new({{.Payload}}))
{{- end}}
{{end}}`))

// render produces formatted Go source for the resolved families.
func render(pkg string, families []resolvedFamily) ([]byte, error) {
	ctx := fileContext{Package: pkg}

	importSet := map[string]bool{VariantImportPath: true}
	for _, f := range families {
		for _, path := range f.Payload.Imports {
			importSet[path] = true
		}
		if f.WordSized {
			importSet["unsafe"] = true
		}
		ctx.Families = append(ctx.Families, familyContext{
			Name:      f.Name,
			Payload:   f.Payload.Expr,
			Optional:  f.Kind == KindOptional,
			Alias:     f.Alias,
			WordSized: f.WordSized,
		})
	}
	for path := range importSet {
		ctx.Imports = append(ctx.Imports, path)
	}
	sort.Strings(ctx.Imports)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	out, err := imports.Process("", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w\n%s", err, buf.String())
	}
	return out, nil
}
