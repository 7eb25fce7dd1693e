// controllers/supplier.go
package controllers

import (
	"errors"
	"net/http"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSupplierInput defines the expected JSON structure for creating a supplier
type CreateSupplierInput struct {
	Name     string     `json:"name" binding:"required"`
	ParentID *uuid.UUID `json:"parentId"`
}

// UpdateSupplierInput defines the expected JSON structure for updating a supplier
type UpdateSupplierInput struct {
	Name     *string    `json:"name"`
	ParentID *uuid.UUID `json:"parentId"`
}

// CreateSupplier creates a new supplier, optionally under a parent group
func CreateSupplier(c *gin.Context) {
	var input CreateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ParentID != nil {
		var parent models.Supplier
		if err := config.DB.First(&parent, "id = ?", *input.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Parent supplier not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	supplier := models.Supplier{
		Name:     input.Name,
		ParentID: input.ParentID,
		IsActive: true,
	}

	if err := config.DB.Create(&supplier).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create supplier")
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

// GetSuppliers retrieves all suppliers with their parent and children
func GetSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	if err := config.DB.Preload("Parent").Preload("Children").
		Order("name").Find(&suppliers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve suppliers")
		return
	}

	c.JSON(http.StatusOK, suppliers)
}

// UpdateSupplier updates a supplier's name or parent
func UpdateSupplier(c *gin.Context) {
	supplierUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	var input UpdateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, "id = ?", supplierUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Supplier not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.ParentID != nil {
		if *input.ParentID == supplier.ID {
			utils.RespondWithError(c, http.StatusBadRequest, "Supplier cannot be its own parent")
			return
		}
		var parent models.Supplier
		if err := config.DB.First(&parent, "id = ?", *input.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Parent supplier not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		supplier.ParentID = input.ParentID
	}

	if err := config.DB.Save(&supplier).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update supplier")
		return
	}

	c.JSON(http.StatusOK, supplier)
}

// ToggleSupplierStatus flips a supplier's active flag
func ToggleSupplierStatus(c *gin.Context) {
	supplierUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	var supplier models.Supplier
	if err := config.DB.Preload("Parent").Preload("Children").
		First(&supplier, "id = ?", supplierUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Supplier not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	supplier.IsActive = !supplier.IsActive
	if err := config.DB.Model(&supplier).Update("is_active", supplier.IsActive).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update supplier status")
		return
	}

	c.JSON(http.StatusOK, supplier)
}
