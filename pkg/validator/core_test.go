package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authqr/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "url", Message: "field is required"})
		errs.Add(validator.ValidationError{Field: "secret_key", Message: "too long"})

		assert.Equal(t, "validation failed: url: field is required; secret_key: too long", errs.Error())
	})
}

func TestValidationErrors_Map(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.Nil(t, errs.Map())

	errs.Add(validator.ValidationError{Field: "url", Message: "a"})
	errs.Add(validator.ValidationError{Field: "url", Message: "b"})
	errs.Add(validator.ValidationError{Field: "secret_key", Message: "c"})

	assert.Equal(t, map[string][]string{
		"url":        {"a", "b"},
		"secret_key": {"c"},
	}, errs.Map())
	assert.True(t, errs.Has("url"))
	assert.False(t, errs.Has("missing"))
	assert.Equal(t, []string{"a", "b"}, errs.Get("url"))
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("url", "http://localhost:8080/"),
			validator.MaxLenString("url", "abc", 3),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failed rules", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("url", "  "),
			validator.MaxLenString("secret_key", "abcd", 3),
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(fmt.Errorf("wrapped: %w", err))
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"url", "secret_key"}, []string{verrs[0].Field, verrs[1].Field})
	})

	t.Run("extract returns nil for foreign errors", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestValidURLWithScheme(t *testing.T) {
	t.Parallel()

	schemes := []string{"http", "https"}

	valid := []string{
		"",
		"http://localhost:8080/",
		"https://example.com/auth?x=1",
		"HTTPS://example.com",
	}
	for _, v := range valid {
		assert.NoError(t, validator.Apply(validator.ValidURLWithScheme("url", v, schemes)), "should be valid: %q", v)
	}

	invalid := []string{
		"localhost:8080",
		"ftp://example.com",
		"http://",
		"/relative/path",
		"not a url",
	}
	for _, v := range invalid {
		assert.Error(t, validator.Apply(validator.ValidURLWithScheme("url", v, schemes)), "should be invalid: %q", v)
	}
}

func TestNoControlChars(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.NoControlChars("secret_key", "abc-_XYZ")))
	assert.Error(t, validator.Apply(validator.NoControlChars("secret_key", "abc\n")))
	assert.Error(t, validator.Apply(validator.NoControlChars("secret_key", "a\x7fb")))
}

func TestValidUTF8(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.ValidUTF8("secret_key", "kłucz-秘密")))
	assert.NoError(t, validator.Apply(validator.ValidUTF8("secret_key", "")))

	err := validator.Apply(
		validator.ValidUTF8("url", "http://x/\xff"),
		validator.ValidUTF8("secret_key", "k\xc3"),
	)
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 2)
	assert.Equal(t, "must be valid UTF-8", verrs.Get("url")[0])
	assert.True(t, verrs.Has("secret_key"))
}
