package cmd

import (
	"bistro/internal/adapters/out/postgres"
	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateZoneCommandHandler() commands.CreateZoneCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateZoneCommandHandler(f)
}

func (c *CompositionRoot) CreateSetZoneActivationCommandHandler() commands.SetZoneActivationCommandHandler {
	var f commands.ZoneUoWFactory = FuncZoneUoWFactory(func() commands.ZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetZoneActivationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCourierLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderZoneUoWFactory = FuncOrderZoneUoWFactory(func() commands.OrderZoneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPayoutCommandHandler() commands.RecordPayoutCommandHandler {
	var f commands.PayoutUoWFactory = FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPayoutCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveZonesQueryHandler() queries.GetActiveZonesQueryHandler {
	return queries.NewGetActiveZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateResolveZoneQueryHandler() queries.ResolveZoneQueryHandler {
	return queries.NewResolveZoneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierBalanceQueryHandler() queries.GetCourierBalanceQueryHandler {
	return queries.NewGetCourierBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierPayoutsQueryHandler() queries.GetCourierPayoutsQueryHandler {
	return queries.NewGetCourierPayoutsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderInvoiceQueryHandler() queries.GetOrderInvoiceQueryHandler {
	return queries.NewGetOrderInvoiceQueryHandler(c.gormDB)
}

type FuncZoneUoWFactory func() commands.ZoneUoW

func (f FuncZoneUoWFactory) Create() commands.ZoneUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderZoneUoWFactory func() commands.OrderZoneUoW

func (f FuncOrderZoneUoWFactory) Create() commands.OrderZoneUoW {
	return f()
}

type FuncPayoutUoWFactory func() commands.PayoutUoW

func (f FuncPayoutUoWFactory) Create() commands.PayoutUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
