package queries

import (
	"context"
	"database/sql"
	"errors"

	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetCheckoutQuoteQueryHandler previews delivery fees for a cart. Groups
// lines by merchant the same way checkout will, resolves each merchant's
// registered coordinates and prices the group with the tariff. Merchants
// unknown to the store quote the flat estimated fee rather than failing:
// a quote is a preview, not a commitment.
type GetCheckoutQuoteQueryHandler struct {
	db          *gorm.DB
	tariff      services.Tariff
	linkBuilder services.PaymentLinkBuilder
}

// NewGetCheckoutQuoteQueryHandler creates a handler for checkout fee previews.
func NewGetCheckoutQuoteQueryHandler(
	db *gorm.DB,
	tariff services.Tariff,
	linkBuilder services.PaymentLinkBuilder,
) GetCheckoutQuoteQueryHandler {
	return GetCheckoutQuoteQueryHandler{
		db:          db,
		tariff:      tariff,
		linkBuilder: linkBuilder,
	}
}

// Handle executes the preview. Merchant groups appear in the order their
// merchant first occurs in the cart, matching the checkout result order.
func (h GetCheckoutQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetCheckoutQuoteQuery,
) (GetCheckoutQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCheckoutQuoteQueryResponse{}, err
	}

	groups := groupQuoteLines(query.Lines())

	var response GetCheckoutQuoteQueryResponse
	for _, group := range groups {
		merchantPoint, err := h.merchantPoint(ctx, group.merchantID)
		if err != nil {
			return GetCheckoutQuoteQueryResponse{}, err
		}

		quote := MerchantQuoteResponse{
			MerchantID:   group.merchantID,
			MerchantName: group.merchantName,
			Subtotal:     group.subtotal,
		}

		if query.DeliveryPoint() == nil || merchantPoint == nil {
			quote.DeliveryFee = h.tariff.FlatFee()
			quote.FeeEstimated = true
		} else {
			fee, estimated, feeErr := h.tariff.Quote(merchantPoint, *query.DeliveryPoint())
			if feeErr != nil {
				return GetCheckoutQuoteQueryResponse{}, feeErr
			}
			quote.DeliveryFee = fee
			quote.FeeEstimated = estimated
		}

		quote.Total = quote.Subtotal.Add(quote.DeliveryFee)
		response.GrandTotal = response.GrandTotal.Add(quote.Total)
		response.Merchants = append(response.Merchants, quote)
	}

	link, err := h.linkBuilder.Link(response.GrandTotal)
	if err != nil {
		return GetCheckoutQuoteQueryResponse{}, err
	}
	response.PaymentLink = link

	return response, nil
}

// merchantPoint resolves a merchant's registered coordinates. An unknown
// merchant or one without coordinates yields nil.
func (h GetCheckoutQuoteQueryHandler) merchantPoint(ctx context.Context, merchantID kernel.UUID) (*kernel.GeoPoint, error) {
	var latitude, longitude *float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT latitude, longitude FROM merchants WHERE id = ?
	`, merchantID.String()).Row()
	if err := row.Scan(&latitude, &longitude); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// An unregistered merchant quotes the flat fee.
			return nil, nil
		}
		return nil, err
	}

	if latitude == nil || longitude == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

type quoteGroup struct {
	merchantID   kernel.UUID
	merchantName string
	subtotal     kernel.Money
}

func groupQuoteLines(lines []QuoteLine) []quoteGroup {
	groups := make([]quoteGroup, 0)
	indexByMerchant := make(map[kernel.UUID]int)

	for _, line := range lines {
		idx, seen := indexByMerchant[line.MerchantID]
		if !seen {
			idx = len(groups)
			indexByMerchant[line.MerchantID] = idx
			groups = append(groups, quoteGroup{
				merchantID:   line.MerchantID,
				merchantName: line.MerchantName,
			})
		}
		groups[idx].subtotal = groups[idx].subtotal.Add(line.UnitPrice.MulQuantity(line.Quantity))
	}

	return groups
}
