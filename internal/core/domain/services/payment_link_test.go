package services_test

import (
	"net/url"
	"strings"
	"testing"

	"carrybee/internal/core/domain/services"
	"carrybee/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentLinkBuilder(t *testing.T) {
	_, err := services.NewPaymentLinkBuilder("", "Carry Bee", "INR")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = services.NewPaymentLinkBuilder("carrybee@okbank", "", "INR")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPaymentLinkBuilder_Link(t *testing.T) {
	builder, err := services.NewPaymentLinkBuilder("carrybee@okbank", "Carry Bee", "")
	require.NoError(t, err)

	link, err := builder.Link(24000)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(link, "upi://pay?"))

	params, err := url.ParseQuery(strings.TrimPrefix(link, "upi://pay?"))
	require.NoError(t, err)
	assert.Equal(t, "carrybee@okbank", params.Get("pa"))
	assert.Equal(t, "Carry Bee", params.Get("pn"))
	assert.Equal(t, "240.00", params.Get("am"))
	assert.Equal(t, "INR", params.Get("cu"))
}

func TestPaymentLinkBuilder_Link_NotConstructed(t *testing.T) {
	var builder services.PaymentLinkBuilder

	_, err := builder.Link(100)

	require.ErrorIs(t, err, services.ErrPaymentLinkBuilderIsNotConstructed)
}
