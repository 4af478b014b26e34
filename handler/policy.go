package handler

import (
	"errors"

	"leave_manager/constants"
	"leave_manager/helper"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetPolicies(c *fiber.Ctx) error {
	filter := new(model.PolicyFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.LeavePolicy{})
	if filter.LeaveType != nil {
		query = query.Where("leave_type = ?", *filter.LeaveType)
	}
	if filter.EmployeeClassification != nil {
		query = query.Where("employee_classification = ?", *filter.EmployeeClassification)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var total int64
	query.Count(&total)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	var policies []model.LeavePolicy
	query.Order("leave_type").Find(&policies)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       policies,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func CreatePolicy(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	input := c.Locals("createInput").(model.CreatePolicyInput)

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	policy := model.LeavePolicy{
		LeaveType:              input.LeaveType,
		TotalDaysPerYear:       input.TotalDaysPerYear,
		EmployeeClassification: input.EmployeeClassification,
		Active:                 active,
	}

	// the unique index on (leave_type, employee_classification) keeps one
	// authoritative policy per pair
	if err := db.Create(&policy).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Policy already exists for this type and classification", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, policy)
}

func UpdatePolicy(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	policyId := c.Locals("policyId").(int)
	input := c.Locals("updateInput").(model.UpdatePolicyInput)

	var policy model.LeavePolicy
	if err := db.First(&policy, policyId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Policy not found", err)
	}

	if input.TotalDaysPerYear != nil {
		policy.TotalDaysPerYear = *input.TotalDaysPerYear
	}
	if input.Active != nil {
		policy.Active = *input.Active
	}

	if err := db.Save(&policy).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update policy", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, policy)
}

func DeletePolicy(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := db.Delete(&model.LeavePolicy{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete policies", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
