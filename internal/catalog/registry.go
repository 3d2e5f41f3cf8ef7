// Package catalog lists the social and storefront platforms a creator can
// connect, along with the fixed performance figures each one reports.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed platforms.yaml
var defaultPlatforms []byte

type Kind string

const (
	KindSocial Kind = "social"
	KindStore  Kind = "store"
)

// Platform is one connectable integration.
type Platform struct {
	Name       string  `yaml:"name" json:"name"`
	Kind       Kind    `yaml:"kind" json:"kind"`
	Engagement float64 `yaml:"engagement" json:"engagement"`
	Reach      int     `yaml:"reach" json:"reach"`
	order      int
}

func (p Platform) IsStore() bool { return p.Kind == KindStore }

// IDPrefix is the platform name with all whitespace removed. Seeded store
// income carries it as the id prefix so it can be removed on disconnect.
func (p Platform) IDPrefix() string { return IDPrefix(p.Name) }

func IDPrefix(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}

type platformsFile struct {
	Platforms []Platform `yaml:"platforms"`
}

type Registry struct {
	mu        sync.RWMutex
	platforms map[string]*Platform
}

func NewRegistry() *Registry {
	return &Registry{
		platforms: make(map[string]*Platform),
	}
}

// Default returns the built-in catalog.
func Default() *Registry {
	r, err := parse(defaultPlatforms)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded platforms.yaml: %v", err))
	}
	return r
}

// LoadFromFile replaces the built-in catalog with the platforms listed in a
// YAML (or JSON) file. An empty path returns the default catalog.
func LoadFromFile(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read platforms config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Registry, error) {
	var file platformsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse platforms config: %w", err)
	}

	registry := NewRegistry()
	for i := range file.Platforms {
		p := file.Platforms[i]
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("platform %d has no name", i)
		}
		if p.Kind != KindSocial && p.Kind != KindStore {
			return nil, fmt.Errorf("platform %q has invalid kind %q", p.Name, p.Kind)
		}
		p.order = i
		registry.Register(&p)
	}
	return registry, nil
}

func (r *Registry) Register(p *Platform) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.order == 0 {
		p.order = len(r.platforms)
	}
	r.platforms[p.Name] = p
}

func (r *Registry) Get(name string) (Platform, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.platforms[name]
	if !ok {
		return Platform{}, false
	}
	return *p, true
}

func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.platforms[name]
	return ok
}

// All returns every platform in catalog order.
func (r *Registry) All() []Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Platform, 0, len(r.platforms))
	for _, p := range r.platforms {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].order < result[j].order })
	return result
}

func (r *Registry) Socials() []Platform { return r.byKind(KindSocial) }
func (r *Registry) Stores() []Platform  { return r.byKind(KindStore) }

func (r *Registry) byKind(kind Kind) []Platform {
	var result []Platform
	for _, p := range r.All() {
		if p.Kind == kind {
			result = append(result, p)
		}
	}
	return result
}

// Names returns platform names in catalog order.
func (r *Registry) Names() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}
