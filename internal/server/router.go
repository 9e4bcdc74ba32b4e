package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	customerctrl "backoffice/internal/customer/controller"
	orderctrl "backoffice/internal/order/controller"
	productctrl "backoffice/internal/product/controller"
	reportctrl "backoffice/internal/report/controller"
	"backoffice/internal/seed"
)

func NewRouter(
	products *productctrl.Controller,
	customers *customerctrl.Controller,
	orders *orderctrl.Controller,
	reports *reportctrl.Controller,
	seeder *seed.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(CORS())

	r.Get("/products", products.HandleList)
	r.Post("/products", products.HandleCreate)

	r.Get("/customers", customers.HandleList)
	r.Post("/customers", customers.HandleCreate)

	r.Get("/orders", orders.HandleList)
	r.Post("/orders", orders.HandleCreate)
	r.Get("/orders/{orderId}", orders.HandleDetail)

	r.Get("/reports/sales_by_product", reports.HandleSalesByProduct)

	r.Post("/dev/seed", seeder.HandleSeed)

	logger.Info("router configured")

	return r
}
