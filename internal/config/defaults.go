package config

import "slices"

// Default toolchain values.
const (
	DefaultPackageRunner   = "npx"
	DefaultPackageManager  = "npm"
	DefaultScaffoldCommand = "create-next-app@latest"
	DefaultUILibrary       = "shadcn@latest"
	DefaultBaseColor       = "neutral"
	DefaultDevScript       = "dev"
)

// DefaultScaffoldFlags are passed to the scaffold command after the project name.
var DefaultScaffoldFlags = []string{
	"--typescript",
	"--tailwind",
	"--eslint",
	"--no-src-dir",
	"--app",
	"--import-alias=@/*",
	"--no-turbopack",
	"-y",
}

// DefaultComponents are the UI library components the generated sections import.
var DefaultComponents = []string{"button", "carousel", "accordion"}

// DefaultDependencies are the extra packages the generated layout and sections import.
var DefaultDependencies = []string{"next-themes", "lucide-react"}

// WithDefaults returns a copy of t with every unset field filled in.
func (t Toolchain) WithDefaults() Toolchain {
	out := t
	if out.PackageRunner == "" {
		out.PackageRunner = DefaultPackageRunner
	}
	if out.PackageManager == "" {
		out.PackageManager = DefaultPackageManager
	}
	if out.ScaffoldCommand == "" {
		out.ScaffoldCommand = DefaultScaffoldCommand
	}
	if out.ScaffoldFlags == nil {
		out.ScaffoldFlags = slices.Clone(DefaultScaffoldFlags)
	}
	if out.UILibrary == "" {
		out.UILibrary = DefaultUILibrary
	}
	if out.BaseColor == "" {
		out.BaseColor = DefaultBaseColor
	}
	if out.Components == nil {
		out.Components = slices.Clone(DefaultComponents)
	}
	if out.Dependencies == nil {
		out.Dependencies = slices.Clone(DefaultDependencies)
	}
	if out.DevScript == "" {
		out.DevScript = DefaultDevScript
	}
	return out
}
