package assets

// Built-in template names.
const (
	// WordStyles renders the YAML style sheet applied to Word documents.
	WordStyles = "styles"
	// PreviewPage is the HTML page served by the preview server.
	PreviewPage = "preview"
)

const templateExt = ".tmpl"

// AssetLoader loads templates by name.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadTemplate loads a template by name (without extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
