package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/framectx/internal/config"
	"github.com/vk/framectx/internal/ctxlog"
	"github.com/vk/framectx/internal/fsutil"
)

const scenarioExtension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL scenario loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL scenario loading process. It is agnostic
// to the origin of the paths and parses any valid block from any file.
// Events are appended in file order, so a scenario split over several files
// replays them in the order the files sort.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.FindFiles(paths, scenarioExtension)
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no %s scenario files found in %v", scenarioExtension, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	m := config.NewModel()
	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		// Translate and merge all discovered blocks into the model.
		for _, fb := range root.Files {
			f, err := l.translateFile(ctx, fb)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			if _, exists := m.Workspace.File(f.Path); exists {
				return nil, fmt.Errorf("%s: file '%s' is declared more than once", file, f.Path)
			}
			m.Workspace.Add(f)
		}
		for _, bb := range root.Breakpoints {
			bp, err := l.translateBreakpoint(bb)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			m.Breakpoints = append(m.Breakpoints, bp)
		}
		for _, eb := range root.Events {
			events, err := l.translateEvent(eb)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			m.Events = append(m.Events, events...)
		}
	}

	logger.Debug("HCL loading complete.",
		"files", len(m.Workspace.Files()),
		"breakpoints", len(m.Breakpoints),
		"events", len(m.Events),
	)
	return m, nil
}
