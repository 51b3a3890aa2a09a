// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package familygen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrTooWide is returned for a word-sized family whose payload does not
// fit one pointer-sized slot.
var ErrTooWide = errors.New("payload does not fit a pointer-sized slot")

// Generator resolves manifest families and renders their Go source.
type Generator struct {
	log      *zap.Logger
	resolver *Resolver
}

// New creates a generator. A nil logger is replaced by a no-op logger.
func New(log *zap.Logger, resolver *Resolver) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{log: log, resolver: resolver}
}

// Generate loads the manifest imports, resolves every family payload and
// returns the formatted generated source.
func (g *Generator) Generate(m *Manifest) ([]byte, error) {
	if err := g.resolver.Load(m.Imports); err != nil {
		return nil, err
	}

	word := g.resolver.WordSize()
	families := make([]resolvedFamily, 0, len(m.Families))
	for i, f := range m.Families {
		p, err := g.resolver.Resolve(f.Payload)
		if err != nil {
			return nil, fmt.Errorf("families[%d] (%s): %w", i, f.Name, err)
		}
		if f.WordSized && p.Size > word {
			return nil, fmt.Errorf("families[%d] (%s): %w: %s is %d bytes, slot is %d",
				i, f.Name, ErrTooWide, p.Expr, p.Size, word)
		}
		g.log.Debug("resolved family",
			zap.String("family", f.Name),
			zap.String("kind", string(f.Kind)),
			zap.String("payload", p.Type.String()),
			zap.Int64("size", p.Size),
			zap.Int64("slot", word),
		)
		families = append(families, resolvedFamily{Family: f, Payload: p})
	}

	return render(m.Package, families)
}

// WriteFile generates the manifest's families into m.Output under dir and
// returns the written path.
func (g *Generator) WriteFile(m *Manifest, dir string) (string, error) {
	src, err := g.Generate(m)
	if err != nil {
		return "", err
	}
	path := m.Output
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	g.log.Info("generated families",
		zap.String("file", path),
		zap.Int("count", len(m.Families)),
	)
	return path, nil
}
