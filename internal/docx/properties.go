package docx

import (
	"baliance.com/gooxml/document"

	"github.com/alnah/go-md2word/internal/docmodel"
)

// Application is written to the app and core properties.
const Application = "go-md2word"

// setProperties fills the core and app properties. Created doubles as the
// modified time.
func setProperties(d *document.Document, meta docmodel.Meta) {
	created := meta.Created.UTC()

	d.CoreProperties.SetTitle(meta.Title)
	d.CoreProperties.SetDescription(meta.Description)
	d.CoreProperties.SetAuthor(Application)
	d.CoreProperties.SetCreated(created)
	d.CoreProperties.SetModified(created)

	d.AppProperties.SetApplication(Application)
}
