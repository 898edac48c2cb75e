package kernel_test

import (
	"testing"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("non_negative", func(t *testing.T) {
		m, err := kernel.NewMoney(240)

		require.NoError(t, err)
		assert.Equal(t, int64(240), m.MinorUnits())
	})

	t.Run("negative_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	subtotal := kernel.Money(100).MulQuantity(2)
	assert.Equal(t, kernel.Money(200), subtotal)

	total := subtotal.Add(kernel.Money(40))
	assert.Equal(t, kernel.Money(240), total)
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "2.40", kernel.Money(240).String())
	assert.Equal(t, "0.05", kernel.Money(5).String())
	assert.Equal(t, "10.00", kernel.Money(1000).String())
}
