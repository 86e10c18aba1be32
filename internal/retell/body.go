package retell

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

// Body encodes a request payload.
type Body interface {
	Encode() (contentType string, r io.Reader, err error)
}

type jsonBody struct {
	v any
}

// JSON returns a Body that marshals v as application/json.
func JSON(v any) Body {
	return jsonBody{v: v}
}

func (b jsonBody) Encode() (string, io.Reader, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to marshal request")
	}
	return "application/json", bytes.NewReader(data), nil
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	field string
	path  string
}

// Form is a multipart/form-data body. Files are read when the form is
// encoded and must resolve inside the form's root directory.
type Form struct {
	root   string
	fields []formField
	files  []formFile
	err    error
}

// NewForm returns an empty multipart form.
func NewForm() *Form {
	return &Form{}
}

// Within confines attached files to dir. Without a root no file can be attached.
func (f *Form) Within(dir string) *Form {
	f.root = dir
	return f
}

// Field adds a plain text field.
func (f *Form) Field(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// JSONField adds a text field holding v encoded as JSON.
func (f *Form) JSONField(name string, v any) *Form {
	data, err := json.Marshal(v)
	if err != nil {
		if f.err == nil {
			f.err = errors.Wrapf(err, "encode form field %s", name)
		}
		return f
	}
	return f.Field(name, string(data))
}

// File attaches the file at path under field.
func (f *Form) File(field, path string) *Form {
	f.files = append(f.files, formFile{field: field, path: path})
	return f
}

// Empty reports whether nothing has been added to the form.
func (f *Form) Empty() bool {
	return len(f.fields) == 0 && len(f.files) == 0
}

func (f *Form) Encode() (string, io.Reader, error) {
	if f.err != nil {
		return "", nil, f.err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return "", nil, errors.Wrapf(err, "write form field %s", field.name)
		}
	}
	for _, file := range f.files {
		if err := f.copyFile(w, file); err != nil {
			return "", nil, err
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, errors.Wrap(err, "close multipart writer")
	}
	return w.FormDataContentType(), &buf, nil
}

func (f *Form) copyFile(w *multipart.Writer, file formFile) error {
	src, err := f.open(file.path)
	if err != nil {
		return err
	}
	defer src.Close()

	part, err := w.CreateFormFile(file.field, filepath.Base(file.path))
	if err != nil {
		return errors.Wrapf(err, "create form file %s", file.path)
	}
	if _, err := io.Copy(part, src); err != nil {
		return errors.Wrapf(err, "read %s", file.path)
	}
	return nil
}

// open resolves path under the root. Absolute paths must point inside it;
// relative paths are taken from it. Traversal and symlinks out of the root fail.
func (f *Form) open(path string) (*os.File, error) {
	if f.root == "" {
		return nil, errors.Mark(errors.Newf("file %s: file uploads are disabled, no upload directory is configured", path), toolerr.ErrValidation)
	}
	name := path
	if filepath.IsAbs(path) {
		rel, err := filepath.Rel(f.root, path)
		if err != nil {
			return nil, errors.Mark(errors.Newf("file %s is outside the upload directory", path), toolerr.ErrValidation)
		}
		name = rel
	}
	src, err := os.OpenInRoot(f.root, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "open %s", path)
		}
		return nil, errors.Mark(errors.Wrapf(err, "file %s is outside the upload directory", path), toolerr.ErrValidation)
	}
	return src, nil
}
