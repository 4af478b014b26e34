package validate

import (
	"errors"
	"strconv"

	"leave_manager/constants"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePolicy() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePolicyInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdatePolicy(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		var input model.UpdatePolicyInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("updateInput", input)
		c.Locals("policyId", valueKey)
		return c.Next()
	}
}
