package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"hotel-website/models"
	"hotel-website/services"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	MenuSvc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{MenuSvc: svc}
}

// GetMenu (GET /api/menu) serves the public restaurant menu.
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	menu, err := ctrl.MenuSvc.Menu()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load menu.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, menu)
}

// GetFullMenu (GET /api/admin/menu)
func (ctrl *MenuController) GetFullMenu(c *gin.Context) {
	menu, err := ctrl.MenuSvc.FullMenu()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to load menu.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, menu)
}

// CreateCategory (POST /api/admin/menu/categories)
func (ctrl *MenuController) CreateCategory(c *gin.Context) {
	var category models.MenuCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Invalid request payload.")
		return
	}
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Category name is required.")
		return
	}
	category.Items = nil

	if err := ctrl.MenuSvc.CreateCategory(&category); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to create category.")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, category)
}

// DeleteCategory (DELETE /api/admin/menu/categories/:id)
func (ctrl *MenuController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Category id must be numeric.")
		return
	}
	if err := ctrl.MenuSvc.DeleteCategory(uint(id)); err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "error.notFound", "Category not found.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to delete category.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// CreateItem (POST /api/admin/menu/items)
func (ctrl *MenuController) CreateItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Invalid request payload.")
		return
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.CategoryID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Item name and category are required.")
		return
	}
	if item.Price < 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Price cannot be negative.")
		return
	}

	if err := ctrl.MenuSvc.CreateItem(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidCategory", "Menu category does not exist.")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, item)
}

// UpdateItem (PATCH /api/admin/menu/items/:id)
func (ctrl *MenuController) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Item id must be numeric.")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "Invalid request payload.")
		return
	}

	if err := ctrl.MenuSvc.UpdateItem(uint(id), updates); err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "error.notFound", "Item not found.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to update item.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": true})
}

// DeleteItem (DELETE /api/admin/menu/items/:id)
func (ctrl *MenuController) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "Item id must be numeric.")
		return
	}
	if err := ctrl.MenuSvc.DeleteItem(uint(id)); err != nil {
		if services.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "error.notFound", "Item not found.")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "Failed to delete item.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
