// controllers/expense.go
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

// ExpenseInput defines the expected JSON structure for an expense
type ExpenseInput struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	IssuedDate  time.Time       `json:"issuedDate" binding:"required"`
}

// CreateExpense creates a standalone expense record
func CreateExpense(c *gin.Context) {
	var input ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Amount.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount cannot be negative")
		return
	}

	expense := models.Expense{
		Description: input.Description,
		Amount:      input.Amount,
		IssuedDate:  input.IssuedDate,
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses retrieves expenses, optionally filtered by period key
func GetExpenses(c *gin.Context) {
	query := config.DB.Model(&models.Expense{})

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

	var expenses []models.Expense
	if err := query.Order("issued_date DESC").Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// UpdateExpense replaces one expense record, recomputing its period key
func UpdateExpense(c *gin.Context) {
	expenseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	var input ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Amount.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount cannot be negative")
		return
	}

	var expense models.Expense
	if err := config.DB.First(&expense, "id = ?", expenseUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	expense.Description = input.Description
	expense.Amount = input.Amount
	expense.IssuedDate = input.IssuedDate

	if err := config.DB.Save(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update expense")
		return
	}

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense removes one expense record
func DeleteExpense(c *gin.Context) {
	expenseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	var expense models.Expense
	if err := config.DB.First(&expense, "id = ?", expenseUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Expense not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
