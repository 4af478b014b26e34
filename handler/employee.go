package handler

import (
	"errors"
	"time"

	"leave_manager/constants"
	"leave_manager/helper"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetEmployees(c *fiber.Ctx) error {
	_, isAdmin, isHR, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_MANAGER, errors.New("not allowed"))
	}

	filter := new(model.EmployeeFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := db.Model(&model.Employee{})
	if filter.SearchKey != "" {
		like := "%" + filter.SearchKey + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", like, like, like)
	}
	if filter.Classification != nil {
		query = query.Where("classification = ?", *filter.Classification)
	}
	if filter.WorkspaceId != nil {
		query = query.Where("workspace_id = ?", *filter.WorkspaceId)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var total int64
	query.Count(&total)

	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	var employees []model.Employee
	query.Preload("Workspace").Preload("Account").Find(&employees)

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       employees,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	})
}

func GetEmployeeById(c *fiber.Ctx) error {
	employeeId := c.Locals("inputId").(int)

	var employee model.Employee
	if err := db.Preload("Workspace").Preload("Manager").Preload("Account").First(&employee, employeeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EMPLOYEE_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, employee)
}

func Me(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.EmployeeId == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EMPLOYEE_NOT_FOUND, errors.New("no employee linked to account"))
	}
	var employee model.Employee
	if err := db.Preload("Workspace").Preload("Manager").First(&employee, claim.EmployeeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EMPLOYEE_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, employee)
}

func CreateEmployee(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	input := c.Locals("createInput").(model.CreateEmployeeInput)

	joinDate, err := utils.ParseDateOnly(input.JoinDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "joinDate must be YYYY-MM-DD", err)
	}

	newEmployee := model.Employee{}
	copier.Copy(&newEmployee, &input)
	newEmployee.JoinDate = joinDate
	newEmployee.IsActive = true
	newEmployee.ProbationStatus = constants.PROBATION_NONE

	if input.ProbationStart != nil && input.ProbationEnd != nil {
		start, err := utils.ParseDateOnly(*input.ProbationStart)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "probationStart must be YYYY-MM-DD", err)
		}
		end, err := utils.ParseDateOnly(*input.ProbationEnd)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "probationEnd must be YYYY-MM-DD", err)
		}
		newEmployee.ProbationStart = &start
		newEmployee.ProbationEnd = &end
		newEmployee.ProbationStatus = constants.PROBATION_ACTIVE
	}

	if input.Username != nil && input.Password != nil {
		hash, err := helper.HashPassword(*input.Password)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		role := constants.ROLE_EMPLOYEE
		if input.Role != nil {
			role = *input.Role
		}
		account := model.Account{
			Username: *input.Username,
			Password: hash,
			Role:     role,
			Active:   true,
		}
		if err := db.Create(&account).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Could not create linked account", err)
		}
		newEmployee.AccountId = &account.ID
	}

	if err := db.Create(&newEmployee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create employee", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, newEmployee)
}

func UpdateEmployee(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	employeeId := c.Locals("employeeId").(int)
	input := c.Locals("updateInput").(model.UpdateEmployeeInput)

	var employee model.Employee
	if err := db.First(&employee, employeeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EMPLOYEE_NOT_FOUND, err)
	}

	copier.Copy(&employee, &input)
	if input.ManagerId != nil {
		employee.ManagerId = input.ManagerId
	}
	if input.WorkspaceId != nil {
		employee.WorkspaceId = input.WorkspaceId
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := db.Save(&employee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update employee", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, employee)
}

// UpdateProbation transitions the probation status; completing stamps
// probationCompletedAt, which unlocks the full accrued balance at once.
func UpdateProbation(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	employeeId := c.Locals("employeeId").(int)
	input := c.Locals("probationInput").(model.ProbationInput)

	var employee model.Employee
	if err := db.First(&employee, employeeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EMPLOYEE_NOT_FOUND, err)
	}

	employee.ProbationStatus = input.Status
	if input.Start != nil {
		start, err := utils.ParseDateOnly(*input.Start)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "start must be YYYY-MM-DD", err)
		}
		employee.ProbationStart = &start
	}
	if input.End != nil {
		end, err := utils.ParseDateOnly(*input.End)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "end must be YYYY-MM-DD", err)
		}
		employee.ProbationEnd = &end
	}
	if input.Status == constants.PROBATION_COMPLETED && employee.ProbationCompletedAt == nil {
		now := time.Now()
		employee.ProbationCompletedAt = &now
	}

	if err := db.Save(&employee).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update probation", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, employee)
}

func DeleteEmployee(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := db.Delete(&model.Employee{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete employees", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
