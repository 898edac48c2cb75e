package http

import (
	"bytes"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"carrybee/internal/core/application/usecases/commands"
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCheckoutResponse_LinkBuilderFailureIsLogged(t *testing.T) {
	e := echo.New()
	var logged bytes.Buffer
	e.Logger.SetOutput(&logged)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/checkout", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())

	total, err := kernel.NewMoney(25000)
	require.NoError(t, err)

	// A zero-value builder fails Validate, so every Link call errors.
	server := &Server{linkBuilder: services.PaymentLinkBuilder{}}
	result := commands.CheckoutResult{
		CreatedOrders: []commands.CreatedOrder{{
			OrderID:      kernel.NewUUID(),
			MerchantID:   kernel.NewUUID(),
			MerchantName: "Spice Villa",
			Subtotal:     total,
			Total:        total,
		}},
	}

	response := server.toCheckoutResponse(ctx, result)

	assert.Empty(t, response.PaymentLink)
	assert.Equal(t, int64(25000), response.GrandTotalMinor)
	assert.Contains(t, logged.String(), "Could not build payment link")
}

func TestToCheckoutResponse_NoCreatedOrdersSkipsLink(t *testing.T) {
	e := echo.New()
	var logged bytes.Buffer
	e.Logger.SetOutput(&logged)

	req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/checkout", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())

	server := &Server{linkBuilder: services.PaymentLinkBuilder{}}
	result := commands.CheckoutResult{
		FailedMerchants: []commands.FailedMerchant{{
			MerchantID:   kernel.NewUUID(),
			MerchantName: "Spice Villa",
		}},
	}

	response := server.toCheckoutResponse(ctx, result)

	assert.Empty(t, response.PaymentLink)
	assert.Empty(t, logged.String())
	require.Len(t, response.FailedMerchants, 1)
	assert.Equal(t, "persistence failed", response.FailedMerchants[0].Reason)
}
