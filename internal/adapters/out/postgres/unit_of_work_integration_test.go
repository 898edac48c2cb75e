package postgres_test

import (
	"context"
	"testing"
	"time"

	"carrybee/internal/adapters/out/postgres"
	"carrybee/internal/adapters/out/postgres/merchantrepo"
	"carrybee/internal/adapters/out/postgres/offerrepo"
	"carrybee/internal/adapters/out/postgres/orderrepo"
	"carrybee/internal/core/application/usecases/commands"
	"carrybee/internal/core/domain/model/account"
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/model/merchant"
	"carrybee/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&merchantrepo.MerchantDTO{},
		&offerrepo.OfferDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines, merchants, offers").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	price, err := kernel.NewMoney(15000)
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), "Paneer Tikka", 1, price)
	suite.Require().NoError(err)

	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Line{line},
		10, "12 Rose St", "+91 98765 43210",
		point, time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndLines() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder()))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(0), lineCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommitIsInvalid() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMerchantRepository_ReadsInsideTransaction() {
	ctx := context.Background()

	point, err := kernel.NewGeoPoint(12.9352, 77.6245)
	suite.Require().NoError(err)
	seeded, err := merchant.NewMerchant(kernel.NewUUID(), "Spice Villa", "5 Market Rd", &point)
	suite.Require().NoError(err)
	suite.Require().NoError(merchantrepo.NewGormMerchantRepository(suite.db).Add(ctx, seeded))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	found, err := uow.MerchantRepository().Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal("Spice Villa", found.Name())
	suite.Require().NotNil(found.Location())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOfferRepository_DeactivateExpired() {
	ctx := context.Background()
	now := time.Now().UTC()

	offers := []offerrepo.OfferDTO{
		{ID: uuid.New(), Title: "Expired Combo", Active: true, ExpiresAt: now.Add(-time.Hour)},
		{ID: uuid.New(), Title: "Live Combo", Active: true, ExpiresAt: now.Add(time.Hour)},
		{ID: uuid.New(), Title: "Already Inactive", Active: false, ExpiresAt: now.Add(-time.Hour)},
	}
	suite.Require().NoError(suite.db.Create(&offers).Error)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	deactivated, err := uow.OfferRepository().DeactivateExpired(ctx, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), deactivated)

	var activeCount int64
	suite.Require().NoError(suite.db.Model(&offerrepo.OfferDTO{}).Where("active = ?", true).Count(&activeCount).Error)
	suite.Equal(int64(1), activeCount)
}

type funcOrderUoWFactory func() commands.OrderUoW

func (f funcOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentStatusTransitions_ExactlyOneWins() {
	ctx := context.Background()

	seeded := suite.createTestOrder()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, seeded))
	suite.Require().NoError(uow.Commit(ctx))

	handler := commands.NewChangeOrderStatusCommandHandler(funcOrderUoWFactory(func() commands.OrderUoW {
		return suite.factory.Create()
	}))

	deliverCmd, err := commands.NewChangeOrderStatusCommand(
		seeded.ID(), order.Delivered, seeded.CustomerID(), account.RoleCustomer)
	suite.Require().NoError(err)
	cancelCmd, err := commands.NewChangeOrderStatusCommand(
		seeded.ID(), order.Cancelled, kernel.NewUUID(), account.RoleAdmin)
	suite.Require().NoError(err)

	type outcome struct {
		target order.Status
		err    error
	}

	results := make(chan outcome, 2)
	go func() {
		results <- outcome{order.Delivered, handler.Handle(context.Background(), deliverCmd)}
	}()
	go func() {
		results <- outcome{order.Cancelled, handler.Handle(context.Background(), cancelCmd)}
	}()

	var winner order.Status
	rejections := 0
	for i := 0; i < 2; i++ {
		result := <-results
		if result.err != nil {
			suite.Require().ErrorIs(result.err, order.ErrIllegalTransition)
			rejections++
			continue
		}
		winner = result.target
	}
	suite.Equal(1, rejections)

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", seeded.ID().Bytes()).Error)
	suite.Equal(winner.String(), dto.Status)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
