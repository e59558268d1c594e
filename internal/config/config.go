package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/jsvensson/css-class-lsp/internal/engine"
	"github.com/jsvensson/css-class-lsp/internal/scan"
	"github.com/jsvensson/css-class-lsp/internal/stylesheet"
)

// FileName is the workspace configuration file looked up in the first
// workspace root.
const FileName = ".cssclasses.hcl"

// Watch modes.
const (
	WatchAuto   = "auto"   // client registration when supported, else native
	WatchClient = "client" // client registration only
	WatchNative = "native" // fsnotify only
	WatchOff    = "off"
)

var watchModes = []string{WatchAuto, WatchClient, WatchNative, WatchOff}

const defaultWorkers = 8

// Config is the server configuration.
type Config struct {
	StaticVocabulary bool     `hcl:"static_vocabulary,optional"`
	SkipDirs         []string `hcl:"skip_dirs,optional"`
	Extensions       []string `hcl:"extensions,optional"`
	Ignore           []string `hcl:"ignore,optional"`
	ScanWorkers      int      `hcl:"scan_workers,optional"`
	Watch            string   `hcl:"watch,optional"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StaticVocabulary: true,
		SkipDirs:         slices.Clone(scan.DefaultSkipDirs),
		Extensions:       slices.Clone(stylesheet.DefaultExtensions),
		Ignore:           []string{},
		ScanWorkers:      defaultWorkers,
		Watch:            WatchAuto,
	}
}

// Load parses an HCL configuration file. Attributes missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(src, path)
}

// LoadWorkspace loads FileName from root. A missing file yields Default.
func LoadWorkspace(root string) (Config, error) {
	cfg, err := Load(filepath.Join(root, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes configuration source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	cfg := Default()
	if diags := gohcl.DecodeBody(file.Body, evalContext(cfg), &cfg); diags.HasErrors() {
		return Config{}, fmt.Errorf("decoding config: %s", diags.Error())
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Scanner returns a workspace scanner honoring the configuration.
func (c Config) Scanner() *scan.Scanner {
	return &scan.Scanner{
		SkipDirs:   c.SkipDirs,
		Extensions: c.Extensions,
		Ignore:     c.Ignore,
		Workers:    c.ScanWorkers,
	}
}

// EngineOptions returns the completion engine options the configuration
// calls for.
func (c Config) EngineOptions() []engine.Option {
	if !c.StaticVocabulary {
		return []engine.Option{engine.WithoutVocabulary()}
	}
	return nil
}

// WatchPattern returns the glob covering every configured stylesheet
// extension, e.g. "**/*.{css,scss}".
func (c Config) WatchPattern() string {
	if len(c.Extensions) == 1 {
		return "**/*." + c.Extensions[0]
	}
	return "**/*.{" + strings.Join(c.Extensions, ",") + "}"
}

func (c *Config) normalize() error {
	if !slices.Contains(watchModes, c.Watch) {
		return fmt.Errorf("watch must be one of %s, got %q", strings.Join(watchModes, ", "), c.Watch)
	}
	if c.ScanWorkers < 1 {
		return fmt.Errorf("scan_workers must be at least 1, got %d", c.ScanWorkers)
	}

	exts := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			return fmt.Errorf("extensions must not contain empty names")
		}
		if !slices.Contains(exts, ext) {
			exts = append(exts, ext)
		}
	}
	if len(exts) == 0 {
		return fmt.Errorf("extensions must not be empty")
	}
	c.Extensions = exts

	if c.SkipDirs == nil {
		c.SkipDirs = []string{}
	}
	if c.Ignore == nil {
		c.Ignore = []string{}
	}
	return nil
}

// evalContext exposes the defaults as `default.skip_dirs` and
// `default.extensions` so files can extend rather than replace them.
func evalContext(defaults Config) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default": cty.ObjectVal(map[string]cty.Value{
				"skip_dirs":  stringList(defaults.SkipDirs),
				"extensions": stringList(defaults.Extensions),
			}),
		},
		Functions: map[string]function.Function{
			"concat":   stdlib.ConcatFunc,
			"distinct": stdlib.DistinctFunc,
			"without":  makeWithoutFunc(),
		},
	}
}

// makeWithoutFunc creates an HCL function that drops values from a list.
// Usage: without(default.skip_dirs, "target")
func makeWithoutFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the list with every occurrence of the given strings removed",
		Params: []function.Parameter{
			{
				Name: "list",
				Type: cty.List(cty.String),
			},
		},
		VarParam: &function.Parameter{
			Name: "values",
			Type: cty.String,
		},
		Type: function.StaticReturnType(cty.List(cty.String)),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			drop := make([]string, 0, len(args)-1)
			for _, v := range args[1:] {
				drop = append(drop, v.AsString())
			}

			var kept []string
			for it := args[0].ElementIterator(); it.Next(); {
				_, v := it.Element()
				if s := v.AsString(); !slices.Contains(drop, s) {
					kept = append(kept, s)
				}
			}
			return stringList(kept), nil
		},
	})
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}
