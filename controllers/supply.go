// controllers/supply.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SupplyInput defines the expected JSON structure for one supply row
type SupplyInput struct {
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	SupplierID    uuid.UUID       `json:"supplierId" binding:"required"`
	SuppliedDate  time.Time       `json:"suppliedDate" binding:"required"`
	PaymentType   string          `json:"paymentType" binding:"required,oneof=CASH CARD"`
	Remarks       string          `json:"remarks"`
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity" binding:"min=0"`
	Price         decimal.Decimal `json:"price"`
}

// assignableSupplier loads a supplier and checks it can be assigned to a
// supply row: it must exist, be active, and not be a parent group.
func assignableSupplier(db *gorm.DB, supplierID uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := db.Preload("Children").First(&supplier, "id = ?", supplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("supplier not found")
		}
		return nil, err
	}
	if !supplier.IsActive {
		return nil, errors.New("supplier is inactive")
	}
	if supplier.IsGroup() {
		return nil, errors.New("cannot assign supplies to a supplier group")
	}
	return &supplier, nil
}

// CreateSupply creates a single supply row
func CreateSupply(c *gin.Context) {
	var input SupplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	if _, err := assignableSupplier(config.DB, input.SupplierID); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	supply := models.Supply{
		InvoiceNumber: input.InvoiceNumber,
		SupplierID:    input.SupplierID,
		SuppliedDate:  input.SuppliedDate,
		PaymentType:   input.PaymentType,
		Remarks:       input.Remarks,
		Name:          input.Name,
		Description:   input.Description,
		Quantity:      input.Quantity,
		Price:         input.Price,
	}

	if err := config.DB.Create(&supply).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create supply")
		return
	}

	config.DB.Preload("Supplier").First(&supply, "id = ?", supply.ID)

	c.JSON(http.StatusCreated, supply)
}

// BulkCreateSupplies creates all rows of one supplier invoice together.
// Every row must carry the same invoice number; the batch is written in a
// single transaction so the invoice exists completely or not at all.
func BulkCreateSupplies(c *gin.Context) {
	var inputs []SupplyInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if len(inputs) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "At least one supply is required")
		return
	}

	invoiceNumbers := make([]string, len(inputs))
	for i, in := range inputs {
		invoiceNumbers[i] = in.InvoiceNumber
	}
	if !utils.SameInvoiceNumber(invoiceNumbers) {
		utils.RespondWithError(c, http.StatusBadRequest, "All supplies must have the same invoice number")
		return
	}

	// Rows of one invoice must also agree on supplier, date and payment type
	first := inputs[0]
	for _, in := range inputs[1:] {
		if in.SupplierID != first.SupplierID || !in.SuppliedDate.Equal(first.SuppliedDate) || in.PaymentType != first.PaymentType {
			utils.RespondWithError(c, http.StatusBadRequest, "All supplies must share supplier, date and payment type")
			return
		}
	}
	for _, in := range inputs {
		if in.Price.IsNegative() {
			utils.RespondWithError(c, http.StatusBadRequest, "Price cannot be negative")
			return
		}
	}

	if _, err := assignableSupplier(config.DB, first.SupplierID); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var supplies []models.Supply
	for _, in := range inputs {
		supply := models.Supply{
			InvoiceNumber: in.InvoiceNumber,
			SupplierID:    in.SupplierID,
			SuppliedDate:  in.SuppliedDate,
			PaymentType:   in.PaymentType,
			Remarks:       in.Remarks,
			Name:          in.Name,
			Description:   in.Description,
			Quantity:      in.Quantity,
			Price:         in.Price,
		}
		if err := tx.Create(&supply).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create supplies")
			return
		}
		supplies = append(supplies, supply)
	}

	tx.Commit()

	c.JSON(http.StatusCreated, supplies)
}

// GetSupplies retrieves supply rows, filtered by the stored (month, year)
// period key or by a supplied-date range.
func GetSupplies(c *gin.Context) {
	query := config.DB.Preload("Supplier")

	monthParam := c.Query("month")
	yearParam := c.Query("year")
	if monthParam != "" && yearParam != "" {
		month, errM := strconv.Atoi(monthParam)
		year, errY := strconv.Atoi(yearParam)
		if errM != nil || errY != nil || month < 1 || month > 12 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid month or year")
			return
		}
		query = query.Where("month = ? AND year = ?", month, year)
	} else {
		if start := c.Query("startDate"); start != "" {
			startDate, err := time.Parse(time.RFC3339, start)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid startDate")
				return
			}
			query = query.Where("supplied_date >= ?", startDate)
		}
		if end := c.Query("endDate"); end != "" {
			endDate, err := time.Parse(time.RFC3339, end)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid endDate")
				return
			}
			query = query.Where("supplied_date <= ?", endDate)
		}
	}

	var supplies []models.Supply
	if err := query.Order("supplied_date DESC").Find(&supplies).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve supplies")
		return
	}

	c.JSON(http.StatusOK, supplies)
}

// UpdateSupply replaces one supply row. Derived amounts and the period key
// are recomputed from the submitted values.
func UpdateSupply(c *gin.Context) {
	supplyUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid supply ID format")
		return
	}

	var input SupplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	var supply models.Supply
	if err := config.DB.First(&supply, "id = ?", supplyUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Supply not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if _, err := assignableSupplier(config.DB, input.SupplierID); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	supply.InvoiceNumber = input.InvoiceNumber
	supply.SupplierID = input.SupplierID
	supply.SuppliedDate = input.SuppliedDate
	supply.PaymentType = input.PaymentType
	supply.Remarks = input.Remarks
	supply.Name = input.Name
	supply.Description = input.Description
	supply.Quantity = input.Quantity
	supply.Price = input.Price

	if err := config.DB.Save(&supply).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update supply")
		return
	}

	config.DB.Preload("Supplier").First(&supply, "id = ?", supply.ID)

	c.JSON(http.StatusOK, supply)
}

// DeleteSupply removes one supply row
func DeleteSupply(c *gin.Context) {
	supplyUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid supply ID format")
		return
	}

	var supply models.Supply
	if err := config.DB.First(&supply, "id = ?", supplyUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Supply not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&supply).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete supply")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supply deleted successfully"})
}
