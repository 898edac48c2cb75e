package commands_test

import (
	"testing"

	"carrybee/internal/core/application/usecases/commands"
	"carrybee/internal/core/domain/model/cart"
	"carrybee/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, merchantID kernel.UUID, merchantName string, priceMinor int64, qty int) cart.Line {
	t.Helper()
	price, err := kernel.NewMoney(priceMinor)
	require.NoError(t, err)
	line, err := cart.NewLine(kernel.NewUUID(), merchantID, merchantName, "Paneer Tikka", price, qty, "")
	require.NoError(t, err)
	return line
}

func mustPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return point
}

func TestNewCheckoutCommand_Success(t *testing.T) {
	customerID := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	point := mustPoint(t, 12.97, 77.59)
	lines := []cart.Line{mustLine(t, merchantID, "Spice Villa", 15000, 2)}

	cmd, err := commands.NewCheckoutCommand(customerID, lines, &point, "12 Rose St", "+91 98765 43210")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Len(t, cmd.Lines(), 1)
	assert.Equal(t, point, cmd.DeliveryPoint())
	assert.Equal(t, "12 Rose St", cmd.Address())
	assert.Equal(t, "+91 98765 43210", cmd.Phone())
}

func TestNewCheckoutCommand_Unauthenticated(t *testing.T) {
	point := mustPoint(t, 12.97, 77.59)
	lines := []cart.Line{mustLine(t, kernel.NewUUID(), "Spice Villa", 15000, 2)}

	_, err := commands.NewCheckoutCommand(kernel.UUID{}, lines, &point, "12 Rose St", "+91 98765 43210")
	require.ErrorIs(t, err, commands.ErrUnauthenticated)
}

func TestNewCheckoutCommand_EmptyCart(t *testing.T) {
	point := mustPoint(t, 12.97, 77.59)

	_, err := commands.NewCheckoutCommand(kernel.NewUUID(), nil, &point, "12 Rose St", "+91 98765 43210")
	require.ErrorIs(t, err, commands.ErrEmptyCart)
}

func TestNewCheckoutCommand_MissingLocation(t *testing.T) {
	lines := []cart.Line{mustLine(t, kernel.NewUUID(), "Spice Villa", 15000, 2)}

	_, err := commands.NewCheckoutCommand(kernel.NewUUID(), lines, nil, "12 Rose St", "+91 98765 43210")
	require.ErrorIs(t, err, commands.ErrMissingLocation)
}

func TestNewCheckoutCommand_MissingContactInfo(t *testing.T) {
	point := mustPoint(t, 12.97, 77.59)
	lines := []cart.Line{mustLine(t, kernel.NewUUID(), "Spice Villa", 15000, 2)}

	t.Run("blank address", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), lines, &point, "   ", "+91 98765 43210")
		require.ErrorIs(t, err, commands.ErrMissingContactInfo)
	})

	t.Run("blank phone", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), lines, &point, "12 Rose St", "")
		require.ErrorIs(t, err, commands.ErrMissingContactInfo)
	})
}

func TestNewCheckoutCommand_CollectsAllPreconditionFailures(t *testing.T) {
	_, err := commands.NewCheckoutCommand(kernel.UUID{}, nil, nil, "", "")
	require.ErrorIs(t, err, commands.ErrUnauthenticated)
	require.ErrorIs(t, err, commands.ErrEmptyCart)
	require.ErrorIs(t, err, commands.ErrMissingLocation)
	require.ErrorIs(t, err, commands.ErrMissingContactInfo)
}

func TestCheckoutCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CheckoutCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
}

func TestCheckoutCommand_LinesReturnsCopy(t *testing.T) {
	point := mustPoint(t, 12.97, 77.59)
	merchantID := kernel.NewUUID()
	lines := []cart.Line{
		mustLine(t, merchantID, "Spice Villa", 15000, 2),
		mustLine(t, merchantID, "Spice Villa", 9000, 1),
	}

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), lines, &point, "12 Rose St", "+91 98765 43210")
	require.NoError(t, err)

	got := cmd.Lines()
	got[0] = got[1]
	assert.NotEqual(t, got[0], cmd.Lines()[0])
}
