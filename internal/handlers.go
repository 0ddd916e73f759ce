package internal

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"drinkstand/internal/model"
)

var validate = validator.New()

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

func (h *Handlers) VerifyAdmin(c *fiber.Ctx) error {
	var i model.LoginInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on verify admin request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if !h.Service.VerifyAdmin(i.Password) {
		return c.Status(fiber.StatusOK).JSON(model.LoginOutput{Valid: false})
	}

	t, err := h.Service.GetJWTToken()
	if err != nil {
		h.logger.Errorf("Error on verify admin request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	setAuthCookie(c, t)
	return c.Status(fiber.StatusOK).JSON(model.LoginOutput{Valid: true})
}

func (h *Handlers) ListDrinks(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Service.Drinks())
}

func (h *Handlers) CreateDrink(c *fiber.Ctx) error {
	i, err := drinkInput(c)
	if err != nil {
		h.logger.Errorf("Error on create drink request: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on create drink request", "data": err.Error()})
	}

	drink, err := h.Service.CreateDrink(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on create drink request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(drink)
}

func (h *Handlers) UpdateDrink(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	i, err := drinkInput(c)
	if err != nil {
		h.logger.Errorf("Error on update drink request: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on update drink request", "data": err.Error()})
	}

	drink, err := h.Service.UpdateDrink(c.Context(), id, i)
	if err != nil {
		if errors.Is(err, ErrDrinkNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": ErrDrinkNotFound.Error()})
		}
		h.logger.Errorf("Error on update drink request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(drink)
}

func (h *Handlers) DeleteDrink(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err = h.Service.DeleteDrink(c.Context(), id)
	if err != nil {
		if errors.Is(err, ErrDrinkNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": ErrDrinkNotFound.Error()})
		}
		h.logger.Errorf("Error on delete drink request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "drink deleted"})
}

func (h *Handlers) ListOrders(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Service.Orders())
}

func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	var i model.OrderInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on create order request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := validate.Struct(&i); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on create order request", "data": err.Error()})
	}

	order, err := h.Service.CreateOrder(c.Context(), i)
	if err != nil {
		var unknownDrink *UnknownDrinkError
		if errors.As(err, &unknownDrink) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": unknownDrink.Error()})
		}
		h.logger.Errorf("Error on create order request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *Handlers) MarkOrderPrepared(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if _, err = h.Service.SetOrderStatus(c.Context(), id, model.OrderStatusPrepared); err != nil {
		return h.orderStatusError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "order marked as prepared"})
}

// MarkOrderReady serves the complete endpoint and echoes the order back.
func (h *Handlers) MarkOrderReady(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	order, err := h.Service.SetOrderStatus(c.Context(), id, model.OrderStatusReady)
	if err != nil {
		return h.orderStatusError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *Handlers) MarkOrderPaid(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if _, err = h.Service.SetOrderStatus(c.Context(), id, model.OrderStatusPaid); err != nil {
		return h.orderStatusError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "order marked as paid"})
}

func (h *Handlers) Statistics(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Service.Statistics())
}

func (h *Handlers) ResetStatistics(c *fiber.Ctx) error {
	if err := h.Service.ResetStatistics(c.Context()); err != nil {
		h.logger.Errorf("Error on reset statistics request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "statistics and orders reset"})
}

func (h *Handlers) orderStatusError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrOrderNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": ErrOrderNotFound.Error()})
	}
	h.logger.Errorf("Error on order status request: %s", err.Error())
	return c.SendStatus(fiber.StatusInternalServerError)
}

func drinkInput(c *fiber.Ctx) (model.DrinkInput, error) {
	var i model.DrinkInput
	if err := c.BodyParser(&i); err != nil {
		return model.DrinkInput{}, err
	}
	if err := validate.Struct(&i); err != nil {
		return model.DrinkInput{}, err
	}
	if i.Price.IsNegative() {
		return model.DrinkInput{}, errors.New("price must not be negative")
	}
	return i, nil
}

func setAuthCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:    "token",
		Value:   token,
		Path:    "/",
		Expires: time.Now().Add(24 * time.Hour),
	}

	c.Cookie(cookie)
}
