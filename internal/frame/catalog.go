package frame

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// catalogFile is the layout of a VARIANTS_FILE.
type catalogFile struct {
	Variants []Variant `yaml:"variants"`
}

// Catalog holds the frame variants known to the server. It starts from the
// built-in variants, can be extended from a YAML file, and is swapped as a
// whole on reload.
type Catalog struct {
	mu          sync.RWMutex
	variants    map[string]Variant
	defaultName string

	fs   afero.Fs
	path string
}

// NewCatalog builds a catalog from the built-in variants plus extra.
func NewCatalog(defaultName string, extra ...Variant) (*Catalog, error) {
	c := &Catalog{defaultName: defaultName}
	variants, err := buildVariants(extra)
	if err != nil {
		return nil, err
	}
	if _, ok := variants[defaultName]; !ok {
		return nil, fmt.Errorf("default variant %q is not defined", defaultName)
	}
	c.variants = variants
	return c, nil
}

// LoadCatalog builds a catalog from the built-in variants and the YAML file at
// path. An empty path means built-ins only.
func LoadCatalog(fs afero.Fs, path, defaultName string) (*Catalog, error) {
	var extra []Variant
	if path != "" {
		var err error
		if extra, err = readCatalogFile(fs, path); err != nil {
			return nil, err
		}
	}

	c, err := NewCatalog(defaultName, extra...)
	if err != nil {
		return nil, err
	}
	c.fs = fs
	c.path = path
	return c, nil
}

func readCatalogFile(fs afero.Fs, path string) ([]Variant, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read variants file: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse variants file %s: %w", path, err)
	}
	return file.Variants, nil
}

func buildVariants(extra []Variant) (map[string]Variant, error) {
	variants := map[string]Variant{}
	for _, v := range append([]Variant{Masks()}, extra...) {
		v = v.withDefaults()
		if err := v.Validate(); err != nil {
			return nil, err
		}
		variants[v.Name] = v
	}
	return variants, nil
}

// Get returns the named variant.
func (c *Catalog) Get(name string) (Variant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.variants[name]
	return v, ok
}

// Default returns the variant served at /frames.
func (c *Catalog) Default() Variant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.variants[c.defaultName]
}

// Names lists the variant names in alphabetical order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.variants))
	for name := range c.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reload re-reads the variants file. On error the current variants are kept.
func (c *Catalog) Reload() error {
	if c.path == "" {
		return nil
	}
	extra, err := readCatalogFile(c.fs, c.path)
	if err != nil {
		return err
	}
	variants, err := buildVariants(extra)
	if err != nil {
		return err
	}
	if _, ok := variants[c.defaultName]; !ok {
		return fmt.Errorf("default variant %q is not defined", c.defaultName)
	}

	c.mu.Lock()
	c.variants = variants
	c.mu.Unlock()
	return nil
}

// Watch reloads the catalog whenever the variants file changes, until ctx is
// done. It watches the parent directory so editors that replace the file are
// noticed too. It is a no-op without a variants file.
func (c *Catalog) Watch(ctx context.Context) error {
	if c.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", c.path, err)
	}

	go c.watch(ctx, watcher)
	slog.Debug("Watching variants file for changes", "path", c.path)
	return nil
}

func (c *Catalog) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	target := filepath.Clean(c.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := c.Reload(); err != nil {
				slog.Error("Failed to reload variants file, keeping previous variants", "path", c.path, "error", err)
				continue
			}
			slog.Info("Reloaded variants file", "path", c.path, "variants", c.Names())

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("File system watcher error", "error", err)
		}
	}
}
