package validate

import (
	"errors"
	"strconv"

	"leave_manager/constants"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		c.Locals("inputId", valueKey)
		return c.Next()
	}
}

func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("deleteIds", input)
		return c.Next()
	}
}

// parseBody body-parses and struct-validates into dst, answering 400 on
// failure. Returns false when a response has already been written.
func parseBody(c *fiber.Ctx, dst any) bool {
	if err := c.BodyParser(dst); err != nil {
		utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		return false
	}
	return true
}
