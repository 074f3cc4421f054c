// internal/platform/ui/symbols.go
package ui

// Icons used by the pterm presenter.
const (
	IconInput     = "📄"
	IconCompanies = "📊"
	IconPipeline  = "🚀"
	IconTime      = "⏱"
)
