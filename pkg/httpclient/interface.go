package httpclient

import "context"

// Client posts requests to JSON speaking HTTP services and decodes their replies.
type Client interface {
	PostJSON(ctx context.Context, url string, body any, out any) error
	PostMultipart(ctx context.Context, url string, form MultipartForm, out any) error
}

// MultipartForm is a multipart/form-data body with plain fields and one file part.
type MultipartForm struct {
	Fields []Field
	File   FilePart
}

// Field is a single form value. Order is preserved on the wire.
type Field struct {
	Name  string
	Value string
}

// FilePart streams the file at Path under FieldName.
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string
	Path        string
}
