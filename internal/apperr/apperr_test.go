package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindInvalidInput, KindOf(InvalidInput("bad")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("no")))
	assert.Equal(t, KindFileUpload, KindOf(FileUpload("nope")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestKindOfThroughWrapping(t *testing.T) {
	err := fmt.Errorf("while handling request: %w", NotFound("gone"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestFileUploadWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := FileUploadWrap(cause, "Failed to save file")

	assert.Equal(t, KindFileUpload, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to save file: disk full", err.Error())
}

func TestValidationCarriesFields(t *testing.T) {
	err := Validation(map[string]string{"email": "failed on email validation"})

	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "failed on email validation", FieldsOf(err)["email"])
	assert.Nil(t, FieldsOf(errors.New("plain")))
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("Category not found with id: %d", 42)
	assert.Equal(t, "Category not found with id: 42", err.Error())
}
