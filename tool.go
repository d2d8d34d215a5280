package laradoc

// ToolKind identifies one of the fixed retrieval tools. The set is
// closed: plans produced by a model are mapped onto it with ParseToolKind
// so a misspelled name can never route to an arbitrary handler.
type ToolKind int

// The four retrieval tools, in display order.
const (
	ToolGeneral ToolKind = iota
	ToolVersion
	ToolFeature
	ToolInstallation
)

// Wire names for the tools, as enumerated to the orchestrator model.
const (
	ToolNameVersion      = "version_search"
	ToolNameFeature      = "feature_search"
	ToolNameInstallation = "installation_search"
	ToolNameGeneral      = "general_search"
)

// String returns the tool's wire name.
func (k ToolKind) String() string {
	switch k {
	case ToolVersion:
		return ToolNameVersion
	case ToolFeature:
		return ToolNameFeature
	case ToolInstallation:
		return ToolNameInstallation
	default:
		return ToolNameGeneral
	}
}

// ParseToolKind maps a wire name to a ToolKind. Unrecognized names fall
// back to ToolGeneral; ok reports whether the name was recognized.
func ParseToolKind(name string) (kind ToolKind, ok bool) {
	switch name {
	case ToolNameVersion:
		return ToolVersion, true
	case ToolNameFeature:
		return ToolFeature, true
	case ToolNameInstallation:
		return ToolInstallation, true
	case ToolNameGeneral:
		return ToolGeneral, true
	default:
		return ToolGeneral, false
	}
}

// ToolSpec describes a tool to the orchestrator model.
type ToolSpec struct {
	Kind        ToolKind
	Name        string
	Description string
}

// ToolSpecs returns the fixed tool registry, in display order.
func ToolSpecs() []ToolSpec {
	return []ToolSpec{
		{
			Kind:        ToolVersion,
			Name:        ToolNameVersion,
			Description: "Search for Laravel version information, release notes, upgrade guides, or version-specific features",
		},
		{
			Kind:        ToolFeature,
			Name:        ToolNameFeature,
			Description: "Search for specific Laravel features like middleware, routing, Eloquent, validation, authentication, etc.",
		},
		{
			Kind:        ToolInstallation,
			Name:        ToolNameInstallation,
			Description: "Search for ONLY Laravel installation, setup, requirements, and getting started information",
		},
		{
			Kind:        ToolGeneral,
			Name:        ToolNameGeneral,
			Description: "General Laravel documentation search for any Laravel-related topics not covered by other tools",
		},
	}
}
