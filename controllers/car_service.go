// controllers/car_service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"autoshop-backend/config"
	"autoshop-backend/finance"
	"autoshop-backend/models"
	"autoshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CarServiceItemInput defines the structure for one service or parts line
type CarServiceItemInput struct {
	Name      string          `json:"name" binding:"required"`
	ItemType  string          `json:"itemType" binding:"omitempty,oneof=SERVICE PARTS"`
	Quantity  int             `json:"quantity" binding:"min=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateCarServiceInput defines the expected JSON structure for creating a car service
type CreateCarServiceInput struct {
	CarPlate       string                `json:"carPlate" binding:"required"`
	CarDetails     string                `json:"carDetails"`
	OwnerName      string                `json:"ownerName" binding:"required"`
	PhoneNo        string                `json:"phoneNo"`
	CarInDateTime  time.Time             `json:"carInDateTime" binding:"required"`
	CarOutDateTime *time.Time            `json:"carOutDateTime"`
	Items          []CarServiceItemInput `json:"items" binding:"required,min=1,dive"`
	DiscountType   *string               `json:"discountType" binding:"omitempty,oneof=PERCENTAGE FIXED"`
	DiscountAmount decimal.Decimal       `json:"discountAmount"`
	PaidInCash     decimal.Decimal       `json:"paidInCash"`
	PaidInCard     decimal.Decimal       `json:"paidInCard"`
}

// UpdateCarServiceInput defines the expected JSON structure for updating a car service
type UpdateCarServiceInput struct {
	CarPlate       *string                `json:"carPlate"`
	CarDetails     *string                `json:"carDetails"`
	OwnerName      *string                `json:"ownerName"`
	PhoneNo        *string                `json:"phoneNo"`
	CarInDateTime  *time.Time             `json:"carInDateTime"`
	CarOutDateTime *time.Time             `json:"carOutDateTime"`
	Items          *[]CarServiceItemInput `json:"items" binding:"omitempty,min=1,dive"`
	DiscountType   *string                `json:"discountType" binding:"omitempty,oneof=PERCENTAGE FIXED"`
	DiscountAmount *decimal.Decimal       `json:"discountAmount"`
	PaidInCash     *decimal.Decimal       `json:"paidInCash"`
	PaidInCard     *decimal.Decimal       `json:"paidInCard"`
}

func validateItemInputs(items []CarServiceItemInput) error {
	for _, item := range items {
		if item.UnitPrice.IsNegative() {
			return errors.New("unit price cannot be negative")
		}
	}
	return nil
}

func carServiceDiscount(discountType *string, amount decimal.Decimal) *finance.Discount {
	if discountType == nil {
		return nil
	}
	return &finance.Discount{
		Type:   finance.DiscountType(*discountType),
		Amount: amount,
	}
}

// CreateCarService creates a new car service invoice with its line items.
// All derived amounts are computed server-side; the invoice and its items
// are written in one transaction.
func CreateCarService(c *gin.Context) {
	var input CreateCarServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := validateItemInputs(input.Items); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.DiscountAmount.IsNegative() || input.PaidInCash.IsNegative() || input.PaidInCard.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Amounts cannot be negative")
		return
	}

	var items []models.CarServiceItem
	var lineItems []finance.LineItem

	for _, item := range input.Items {
		itemType := item.ItemType
		if itemType == "" {
			itemType = string(finance.ItemTypeService)
		}

		items = append(items, models.CarServiceItem{
			Name:      item.Name,
			ItemType:  itemType,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
		lineItems = append(lineItems, finance.LineItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	totals := finance.Aggregate(lineItems, carServiceDiscount(input.DiscountType, input.DiscountAmount))

	carService := models.CarService{
		CarPlate:       input.CarPlate,
		CarDetails:     input.CarDetails,
		OwnerName:      input.OwnerName,
		PhoneNo:        input.PhoneNo,
		CarInDateTime:  input.CarInDateTime,
		CarOutDateTime: input.CarOutDateTime,
		DiscountType:   input.DiscountType,
		DiscountAmount: input.DiscountAmount,
		Subtotal:       totals.Subtotal,
		TotalAmount:    totals.FinalAmount,
		GSTAmount:      totals.GSTAmount,
		PaidInCash:     input.PaidInCash,
		PaidInCard:     input.PaidInCard,
		Items:          items,
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&carService).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create car service")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, carService)
}

// GetCarServices retrieves car services, optionally filtered by the stored
// (month, year) period key, and by outstanding payment status.
func GetCarServices(c *gin.Context) {
	query := config.DB.Preload("Items")

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
	}

	var carServices []models.CarService
	if err := query.Order("car_in_date_time DESC").Find(&carServices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve car services")
		return
	}

	if c.Query("outstanding") == "true" {
		filtered := carServices[:0]
		for _, cs := range carServices {
			if !cs.Settlement().IsSettled {
				filtered = append(filtered, cs)
			}
		}
		carServices = filtered
	}

	c.JSON(http.StatusOK, carServices)
}

// GetCarService retrieves a specific car service by ID
func GetCarService(c *gin.Context) {
	carServiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid car service ID format")
		return
	}

	var carService models.CarService
	if err := config.DB.Preload("Items").First(&carService, "id = ?", carServiceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Car service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, carService)
}

// UpdateCarService updates an existing car service. Changing the items,
// discount or car-in date recomputes the invoice totals and period key.
func UpdateCarService(c *gin.Context) {
	carServiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid car service ID format")
		return
	}

	var input UpdateCarServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var carService models.CarService
	if err := tx.Preload("Items").First(&carService, "id = ?", carServiceUUID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Car service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CarPlate != nil {
		carService.CarPlate = *input.CarPlate
	}
	if input.CarDetails != nil {
		carService.CarDetails = *input.CarDetails
	}
	if input.OwnerName != nil {
		carService.OwnerName = *input.OwnerName
	}
	if input.PhoneNo != nil {
		carService.PhoneNo = *input.PhoneNo
	}
	if input.CarInDateTime != nil {
		carService.CarInDateTime = *input.CarInDateTime
	}
	if input.CarOutDateTime != nil {
		carService.CarOutDateTime = input.CarOutDateTime
	}

	// If items are being replaced, clear the old rows and rebuild
	if input.Items != nil {
		if err := validateItemInputs(*input.Items); err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		if err := tx.Where("car_service_id = ?", carService.ID).Delete(&models.CarServiceItem{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
			return
		}

		var newItems []models.CarServiceItem
		for _, item := range *input.Items {
			itemType := item.ItemType
			if itemType == "" {
				itemType = string(finance.ItemTypeService)
			}
			newItems = append(newItems, models.CarServiceItem{
				CarServiceID: carService.ID,
				Name:         item.Name,
				ItemType:     itemType,
				Quantity:     item.Quantity,
				UnitPrice:    item.UnitPrice,
			})
		}
		carService.Items = newItems
	}

	if input.DiscountType != nil {
		carService.DiscountType = input.DiscountType
	}
	if input.DiscountAmount != nil {
		if input.DiscountAmount.IsNegative() {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Discount cannot be negative")
			return
		}
		carService.DiscountAmount = *input.DiscountAmount
	}

	// Recompute totals whenever the inputs to them changed
	if input.Items != nil || input.DiscountType != nil || input.DiscountAmount != nil {
		var lineItems []finance.LineItem
		for _, item := range carService.Items {
			lineItems = append(lineItems, finance.LineItem{
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
		totals := finance.Aggregate(lineItems, carServiceDiscount(carService.DiscountType, carService.DiscountAmount))
		carService.Subtotal = totals.Subtotal
		carService.TotalAmount = totals.FinalAmount
		carService.GSTAmount = totals.GSTAmount
	}

	if input.PaidInCash != nil {
		carService.PaidInCash = *input.PaidInCash
	}
	if input.PaidInCard != nil {
		carService.PaidInCard = *input.PaidInCard
	}

	if err := tx.Save(&carService).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update car service")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, carService)
}

// DeleteCarService removes a car service and its line items
func DeleteCarService(c *gin.Context) {
	carServiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid car service ID format")
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var carService models.CarService
	if err := tx.First(&carService, "id = ?", carServiceUUID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Car service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("car_service_id = ?", carService.ID).Delete(&models.CarServiceItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete car service items")
		return
	}

	if err := tx.Delete(&carService).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete car service")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Car service deleted successfully"})
}
