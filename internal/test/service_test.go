package test

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"drinkstand/internal"
	"drinkstand/internal/blob"
	mock_blob "drinkstand/internal/mock"
	"drinkstand/internal/model"
)

var _ = Describe("Service", func() {
	var (
		ctrl  *gomock.Controller
		store *mock_blob.MockStore
		srv   *internal.Service
	)

	// the accumulator blob deliberately disagrees with the ledger to prove
	// the snapshot never reads it
	var (
		drinksJSON = []byte(`[{"id":2,"name":"Wasser","price":6.0,"description":""},{"id":5,"name":"Cola","price":4.0,"description":"4dl"}]`)
		ordersJSON = []byte(`[{"id":0,"customer_name":"Mia","items":[{"drink_id":2,"quantity":1}],"total_price":6.0,"status":"open","created_at":"2026-08-01T10:00:00Z"}]`)
		statsJSON  = []byte(`[{"drink_id":2,"total_quantity":42,"total_revenue":1000.0}]`)
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		store = mock_blob.NewMockStore(ctrl)
		store.EXPECT().Load(gomock.Any(), blob.KeyDrinks).Return(drinksJSON, nil)
		store.EXPECT().Load(gomock.Any(), blob.KeyOrders).Return(ordersJSON, nil)
		store.EXPECT().Load(gomock.Any(), blob.KeyStatistics).Return(statsJSON, nil)

		srv, err = internal.NewService(context.Background(), store, "secret", logger.Sugar())
		Expect(err).ShouldNot(HaveOccurred())
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Service tests", func() {
		It("computes the order total from the current catalog", func() {
			ctx := context.Background()

			store.EXPECT().Save(gomock.Any(), blob.KeyOrders, gomock.Any()).Return(nil)
			store.EXPECT().Save(gomock.Any(), blob.KeyStatistics, gomock.Any()).Return(nil)

			order, err := srv.CreateOrder(ctx, model.OrderInput{
				CustomerName: "Ana",
				Items: []model.OrderItem{
					{DrinkID: 2, Quantity: 1},
					{DrinkID: 5, Quantity: 3},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(order.ID).Should(Equal(1))
			Expect(order.Status).Should(Equal(model.OrderStatusOpen))
			Expect(order.TotalPrice.Equal(decimal.NewFromFloat(18.0))).Should(BeTrue())
		})
		It("rejects an order referencing an unknown drink", func() {
			ctx := context.Background()

			_, err := srv.CreateOrder(ctx, model.OrderInput{
				CustomerName: "Ben",
				Items:        []model.OrderItem{{DrinkID: 99, Quantity: 1}},
			})
			Expect(err).Should(HaveOccurred())

			var unknownDrink *internal.UnknownDrinkError
			Expect(errors.As(err, &unknownDrink)).Should(BeTrue())
			Expect(unknownDrink.DrinkID).Should(Equal(99))
			Expect(srv.Orders()).Should(HaveLen(1))
		})
		It("persists the catalog on drink creation", func() {
			ctx := context.Background()

			store.EXPECT().Save(gomock.Any(), blob.KeyDrinks, gomock.Any()).Return(nil)

			drink, err := srv.CreateDrink(ctx, model.DrinkInput{Name: "Mate", Price: decimal.NewFromFloat(5.5)})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(drink.ID).Should(Equal(6))
		})
		It("surfaces a failed save on drink creation", func() {
			ctx := context.Background()

			store.EXPECT().Save(gomock.Any(), blob.KeyDrinks, gomock.Any()).Return(errors.New("some error"))

			_, err := srv.CreateDrink(ctx, model.DrinkInput{Name: "Mate"})
			Expect(err).Should(HaveOccurred())
		})
		It("reports a missing drink on update", func() {
			ctx := context.Background()

			_, err := srv.UpdateDrink(ctx, 99, model.DrinkInput{Name: "Geist"})
			Expect(err).Should(Equal(internal.ErrDrinkNotFound))
		})
		It("recomputes the snapshot from the ledger, not the accumulator", func() {
			stats := srv.Statistics()

			Expect(stats.TotalOrders).Should(Equal(1))
			Expect(stats.OpenOrders).Should(Equal(1))
			Expect(stats.Drinks).Should(HaveLen(2))
			Expect(stats.Drinks[0].DrinkID).Should(Equal(2))
			Expect(stats.Drinks[0].TotalQuantity).Should(Equal(1))
			Expect(stats.Drinks[0].TotalRevenue.Equal(decimal.NewFromFloat(6.0))).Should(BeTrue())
		})
		It("reset clears the ledger and rewinds the order counter", func() {
			ctx := context.Background()

			store.EXPECT().Save(gomock.Any(), blob.KeyOrders, gomock.Any()).Return(nil).Times(2)
			store.EXPECT().Save(gomock.Any(), blob.KeyStatistics, gomock.Any()).Return(nil).Times(2)

			Expect(srv.ResetStatistics(ctx)).Should(Succeed())
			Expect(srv.Orders()).Should(BeEmpty())

			order, err := srv.CreateOrder(ctx, model.OrderInput{
				CustomerName: "Cleo",
				Items:        []model.OrderItem{{DrinkID: 5, Quantity: 1}},
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(order.ID).Should(Equal(0))
		})
	})
})
