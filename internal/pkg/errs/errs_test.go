package errs_test

import (
	"errors"
	"testing"

	"kebabhouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderNumber", "123")

		assert.Equal(t, "orderNumber", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderNumber", "123", cause)

		assert.Equal(t, "orderNumber", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderNumber, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("taxId")

		assert.Equal(t, "taxId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: taxId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("taxId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: taxId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestPropertyError(t *testing.T) {
	t.Run("NewPropertyError", func(t *testing.T) {
		err := errs.NewPropertyError("STORAGE_KIND")

		assert.Equal(t, "STORAGE_KIND", err.Key)
		require.NoError(t, err.Cause)
		assert.Equal(t, "property is missing or malformed: STORAGE_KIND", err.Error())
		assert.Equal(t, errs.ErrProperty, err.Unwrap())
	})

	t.Run("NewPropertyErrorWithCause", func(t *testing.T) {
		cause := errors.New("not a number")
		err := errs.NewPropertyErrorWithCause("HTTP_PORT", cause)

		assert.Equal(t, "HTTP_PORT", err.Key)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "property is missing or malformed: HTTP_PORT (cause: not a number)", err.Error())
		assert.Equal(t, errs.ErrProperty, err.Unwrap())
	})
}

func TestDAOError(t *testing.T) {
	t.Run("wraps the storage fault without losing the cause", func(t *testing.T) {
		cause := errors.New("connection reset by peer")
		err := errs.NewDAOError("orders.update", cause)

		assert.Equal(t, "orders.update", err.Op)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "persistence operation failed: orders.update (cause: connection reset by peer)", err.Error())
		assert.Equal(t, errs.ErrDAO, err.Unwrap())
	})

	t.Run("sanitize strips newlines from the message", func(t *testing.T) {
		err := errs.NewDAOError("orders.insert", errors.New("line one\nline two"))
		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrProperty)
		require.Error(t, errs.ErrDAO)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "property is missing or malformed", errs.ErrProperty.Error())
		assert.Equal(t, "persistence operation failed", errs.ErrDAO.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderNumber", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("taxId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewPropertyError("STORAGE_KIND"), errs.ErrProperty)
		require.ErrorIs(t, errs.NewDAOError("orders.get", errors.New("boom")), errs.ErrDAO)
	})
}
