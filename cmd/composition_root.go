package cmd

import (
	"log/slog"

	"carrybee/internal/adapters/out/postgres"
	"carrybee/internal/adapters/out/postgres/rolerepo"
	"carrybee/internal/core/application/auth"
	"carrybee/internal/core/application/usecases/commands"
	"carrybee/internal/core/application/usecases/queries"
	"carrybee/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	tariff      services.Tariff
	linkBuilder services.PaymentLinkBuilder
	publisher   commands.OrderCreatedPublisher
	logger      *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	tariff services.Tariff,
	linkBuilder services.PaymentLinkBuilder,
	publisher commands.OrderCreatedPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		tariff:      tariff,
		linkBuilder: linkBuilder,
		publisher:   publisher,
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.tariff, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireOffersCommandHandler() commands.ExpireOffersCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireOffersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCheckoutQuoteQueryHandler() queries.GetCheckoutQuoteQueryHandler {
	return queries.NewGetCheckoutQuoteQueryHandler(c.gormDB, c.tariff, c.linkBuilder)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGate() auth.Gate {
	return auth.NewGate(rolerepo.NewGormRoleRepository(c.gormDB))
}

func (c *CompositionRoot) PaymentLinkBuilder() services.PaymentLinkBuilder {
	return c.linkBuilder
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}
