package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchemasAreComplete(t *testing.T) {
	require.NoError(t, DefaultMPSchema().Validate(MPFields))
	require.NoError(t, DefaultKYMSchema().Validate(KYMFields))
}

func TestSchemaValidate(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		s := DefaultMPSchema()
		delete(s, FieldAccountNumber)

		err := s.Validate(MPFields)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "account_number")
	})

	t.Run("negative index", func(t *testing.T) {
		s := DefaultKYMSchema()
		s[FieldMonthlyDeposit] = -1

		err := s.Validate(KYMFields)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "monthly_deposit")
	})

	t.Run("extra bindings are allowed", func(t *testing.T) {
		s := DefaultMPSchema()
		s["future_column"] = 40

		assert.NoError(t, s.Validate(MPFields))
	})
}
