package validate

import (
	"errors"
	"strconv"

	"leave_manager/constants"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEmployeeInput
		if !parseBody(c, &input) {
			return nil
		}
		if (input.Username == nil) != (input.Password == nil) {
			return utils.ErrorResponse(c, 400, "username and password must be provided together", errors.New("partial account input"))
		}
		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateEmployee(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		var input model.UpdateEmployeeInput
		if !parseBody(c, &input) {
			return nil
		}
		c.Locals("updateInput", input)
		c.Locals("employeeId", valueKey)
		return c.Next()
	}
}

func Probation(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		var input model.ProbationInput
		if !parseBody(c, &input) {
			return nil
		}
		if (input.Status == constants.PROBATION_ACTIVE || input.Status == constants.PROBATION_EXTENDED) &&
			(input.Start == nil || input.End == nil) {
			return utils.ErrorResponse(c, 400, "probation window requires start and end dates", errors.New("missing window"))
		}
		c.Locals("probationInput", input)
		c.Locals("employeeId", valueKey)
		return c.Next()
	}
}
