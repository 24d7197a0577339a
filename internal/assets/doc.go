// Package assets provides the templates used to build Word documents and
// the preview page.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// # Templates
//
//	{basePath}/
//	└── templates/
//	    ├── styles.tmpl    # Word style sheet (text/template rendering YAML)
//	    └── preview.tmpl   # preview server page (html/template)
//
// A custom directory only needs the templates it overrides.
//
// # Security
//
// Template names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
