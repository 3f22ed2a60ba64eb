// Package app implements the application layer for rigg.
package app

import (
	"context"
	"fmt"

	"github.com/riggbuild/rigg/internal/core/domain"
	"github.com/riggbuild/rigg/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SettingsOverride applies manifest-level overrides to the host settings
// after the manifest has been loaded.
type SettingsOverride interface {
	SetToolsDir(dir string)
}

// ResolveOptions carries per-invocation overrides from the CLI.
type ResolveOptions struct {
	// ConfigFile selects the manifest file in the working directory.
	// Empty means the loader's default.
	ConfigFile string

	// Scope, when set, overrides the declared install scope of every
	// requested package.
	Scope *domain.InstallScope
}

// App represents the main application logic: load the manifest, then
// locate the files the package manager installed for each declared tool.
type App struct {
	loader   ports.ConfigLoader
	locator  ports.PackageLocator
	hasher   ports.Hasher
	logger   ports.Logger
	env      ports.Environment
	override SettingsOverride
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	locator ports.PackageLocator,
	hasher ports.Hasher,
	logger ports.Logger,
	env ports.Environment,
	override SettingsOverride,
) *App {
	return &App{
		loader:   loader,
		locator:  locator,
		hasher:   hasher,
		logger:   logger,
		env:      env,
		override: override,
	}
}

// Resolve locates the installed files for the named packages, or for every
// declared package when names is empty. Results keep the request order.
// Resolutions for distinct packages run concurrently; they only read the
// filesystem, apart from the idempotent tool-cache creation.
func (a *App) Resolve(ctx context.Context, names []string, opts ResolveOptions) ([]domain.Resolution, error) {
	manifest, err := a.loader.Load(a.env.WorkingDirectory(), opts.ConfigFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	a.override.SetToolsDir(manifest.ToolsDir)

	decls, err := selectTools(manifest, names)
	if err != nil {
		return nil, err
	}
	if len(decls) == 0 {
		return nil, domain.ErrNoToolsDeclared
	}

	results := make([]domain.Resolution, len(decls))
	g, ctx := errgroup.WithContext(ctx)
	for i, decl := range decls {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			scope := decl.Scope
			if opts.Scope != nil {
				scope = *opts.Scope
			}

			dir, files, err := a.locator.Resolve(decl.Package, domain.KindTool, scope)
			if err != nil {
				return zerr.With(err, "version", decl.Package.Version.String())
			}

			digest, err := a.hasher.DigestFiles(files)
			if err != nil {
				return zerr.Wrap(err, "failed to digest resolved files")
			}

			a.logger.Info(fmt.Sprintf("resolved %s: %d files", decl.Package, len(files)))
			results[i] = domain.Resolution{
				Package:   decl.Package,
				Scope:     scope,
				Directory: dir,
				Files:     files,
				Digest:    digest,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// selectTools picks the requested declarations from the manifest, keeping
// manifest order when no names are given.
func selectTools(manifest *domain.Manifest, names []string) ([]domain.ToolDeclaration, error) {
	if len(names) == 0 {
		return manifest.Tools(), nil
	}

	decls := make([]domain.ToolDeclaration, 0, len(names))
	for _, name := range names {
		decl, err := manifest.Tool(name)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return decls, nil
}
