package form

import (
	"bytes"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// MimeType fails when one of the uploaded files is not of an allowed type.
func MimeType(allowed ...string) Validator {
	return func(value any, _ Values) *ValidationError {
		if value == nil {
			return nil
		}

		files, ok := value.([]*multipart.FileHeader)
		if !ok {
			panic(&TypeMismatchError{Validator: TypeMimeType, Value: value})
		}

		for _, header := range files {
			mtype, err := detectFileMimeType(header)
			if err != nil {
				return newError(TypeMimeType, "File could not be read")
			}

			if !isAllowed(mtype, allowed) {
				return newError(TypeMimeType, "File type "+mtype.String()+" is not allowed")
			}
		}

		return nil
	}
}

func isAllowed(mtype *mimetype.MIME, allowed []string) bool {
	for _, a := range allowed {
		if mtype.Is(a) {
			return true
		}
	}
	return false
}

func detectFileMimeType(header *multipart.FileHeader) (*mimetype.MIME, error) {
	file, err := header.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	mtype, _, err := DetectMimeType(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return mtype, nil
}

// DetectMimeType sniffs the mime type of input and returns a reader replaying
// the consumed bytes.
func DetectMimeType(input io.Reader) (mtype *mimetype.MIME, recycled io.Reader, err error) {
	header := bytes.NewBuffer(nil)

	mtype, err = mimetype.DetectReader(io.TeeReader(input, header))
	if err != nil {
		return
	}

	recycled = io.MultiReader(header, input)

	return mtype, recycled, err
}

// hasFileFields checks if any of the registered fields are file inputs
func (f *Form) hasFileFields() bool {
	for _, binding := range f.bindings {
		if binding.Kind == KindFile {
			return true
		}
	}
	return false
}
