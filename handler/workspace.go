package handler

import (
	"errors"

	"leave_manager/constants"
	"leave_manager/helper"
	"leave_manager/model"
	"leave_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetWorkspaces(c *fiber.Ctx) error {
	var workspaces []model.Workspace
	if err := db.Order("name").Find(&workspaces).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, workspaces)
}

func GetWorkspaceById(c *fiber.Ctx) error {
	workspaceId := c.Locals("inputId").(int)

	var workspace model.Workspace
	if err := db.First(&workspace, workspaceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Workspace not found", err)
	}

	var members []model.Employee
	db.Where("workspace_id = ? AND is_active = ?", workspace.ID, true).Order("first_name").Find(&members)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"workspace": workspace,
		"members":   members,
	})
}

func CreateWorkspace(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	input := c.Locals("createInput").(model.CreateWorkspaceInput)

	workspace := model.Workspace{Active: true}
	copier.Copy(&workspace, &input)
	workspace.Slug = helper.GenerateUniqueWorkspaceSlug(db, input.Name)

	if err := db.Create(&workspace).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create workspace", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, workspace)
}

func UpdateWorkspace(c *fiber.Ctx) error {
	_, isAdmin, isHR, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isHR {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	workspaceId := c.Locals("workspaceId").(int)
	input := c.Locals("updateInput").(model.UpdateWorkspaceInput)

	var workspace model.Workspace
	if err := db.First(&workspace, workspaceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Workspace not found", err)
	}

	if input.Name != nil && *input.Name != workspace.Name {
		workspace.Name = *input.Name
		workspace.Slug = helper.GenerateUniqueWorkspaceSlug(db, *input.Name)
	}
	if input.Description != nil {
		workspace.Description = *input.Description
	}
	if input.Active != nil {
		workspace.Active = *input.Active
	}

	if err := db.Save(&workspace).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update workspace", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, workspace)
}

func DeleteWorkspace(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not allowed"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := db.Delete(&model.Workspace{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not delete workspaces", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
