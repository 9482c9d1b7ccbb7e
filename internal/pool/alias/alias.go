// Package alias maps account addresses to human readable names.
package alias

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
	"gopkg.in/yaml.v3"
)

// DisplayTimeout bounds a single lookup made by Display.
const DisplayTimeout = 500 * time.Millisecond

// Resolver looks up the name registered for an address.
type Resolver interface {
	Resolve(ctx context.Context, addr string) (string, bool, error)
}

// StaticResolver serves names from a fixed table.
type StaticResolver struct {
	names map[string]string
}

type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// NewStaticResolver indexes names by normalized address. Malformed addresses are rejected.
func NewStaticResolver(names map[string]string) (*StaticResolver, error) {
	r := &StaticResolver{names: make(map[string]string, len(names))}
	for addr, name := range names {
		if !model.ValidAddress(addr) {
			return nil, fmt.Errorf("alias %q: invalid address %q", name, addr)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		r.names[model.NormalizeAddress(addr)] = name
	}
	return r, nil
}

// LoadStaticResolver reads a YAML file of the form
//
//	aliases:
//	  "0xabc...": alice.eth
func LoadStaticResolver(path string) (*StaticResolver, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias file: %w", err)
	}
	var f aliasFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse alias file: %w", err)
	}
	return NewStaticResolver(f.Aliases)
}

func (r *StaticResolver) Resolve(ctx context.Context, addr string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	name, ok := r.names[model.NormalizeAddress(addr)]
	return name, ok, nil
}

// Display returns the name of addr, or addr itself when r is nil, has no entry,
// fails or does not answer within DisplayTimeout.
func Display(ctx context.Context, r Resolver, addr string) string {
	if r == nil {
		return addr
	}
	ctx, cancel := context.WithTimeout(ctx, DisplayTimeout)
	defer cancel()

	type answer struct {
		name string
		ok   bool
		err  error
	}
	done := make(chan answer, 1)
	go func() {
		name, ok, err := r.Resolve(ctx, addr)
		done <- answer{name: name, ok: ok, err: err}
	}()

	select {
	case <-ctx.Done():
		return addr
	case a := <-done:
		if a.err != nil || !a.ok || a.name == "" {
			return addr
		}
		return a.name
	}
}
