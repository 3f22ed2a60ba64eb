package domain

import "go.trai.ch/zerr"

// ToolDeclaration is a project's intent to depend on one tool package,
// as written in rigg.yaml. It is the input representation before any
// filesystem resolution happens.
type ToolDeclaration struct {
	Package PackageReference
	Scope   InstallScope
}

// Manifest is the parsed rigg.yaml: the declared tool packages plus the
// project-level tools-directory override.
type Manifest struct {
	// ToolsDir overrides the default tool-cache location when non-empty.
	// Relative values are interpreted against the working directory.
	ToolsDir string

	tools map[string]ToolDeclaration
	order []string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{tools: make(map[string]ToolDeclaration)}
}

// AddTool registers a tool declaration. Declaring the same package name
// twice is a configuration error.
func (m *Manifest) AddTool(decl ToolDeclaration) error {
	name := decl.Package.Name.String()
	if _, exists := m.tools[name]; exists {
		return zerr.With(ErrToolAlreadyDeclared, "package", name)
	}
	m.tools[name] = decl
	m.order = append(m.order, name)
	return nil
}

// Tool returns the declaration for the given package name.
func (m *Manifest) Tool(name string) (ToolDeclaration, error) {
	decl, exists := m.tools[name]
	if !exists {
		return ToolDeclaration{}, zerr.With(ErrToolNotDeclared, "package", name)
	}
	return decl, nil
}

// Tools returns all declarations in the order they were added.
func (m *Manifest) Tools() []ToolDeclaration {
	decls := make([]ToolDeclaration, 0, len(m.order))
	for _, name := range m.order {
		decls = append(decls, m.tools[name])
	}
	return decls
}
