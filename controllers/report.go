// controllers/report.go
package controllers

import (
	"net/http"
	"strconv"

	"autoshop-backend/config"
	"autoshop-backend/finance"
	"autoshop-backend/models"
	"autoshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReportController handles the monthly summary and supplier reports
type ReportController struct{}

func periodParams(c *gin.Context) (month, year int, ok bool) {
	month, errM := strconv.Atoi(c.Query("month"))
	year, errY := strconv.Atoi(c.Query("year"))
	if errM != nil || errY != nil || month < 1 || month > 12 || year == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month or year")
		return 0, 0, false
	}
	return month, year, true
}

// GetSummary returns the monthly totals and profit/loss for one period.
// Records are matched on their stored (month, year) key, not a date range.
func (rc *ReportController) GetSummary(c *gin.Context) {
	month, year, ok := periodParams(c)
	if !ok {
		return
	}

	var carServiceTotals []decimal.Decimal
	if err := config.DB.Model(&models.CarService{}).
		Where("month = ? AND year = ?", month, year).
		Pluck("total_amount", &carServiceTotals).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get car services")
		return
	}

	var supplies []models.Supply
	if err := config.DB.Select("quantity", "price").
		Where("month = ? AND year = ?", month, year).
		Find(&supplies).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get supplies")
		return
	}

	var expenseAmounts []decimal.Decimal
	if err := config.DB.Model(&models.Expense{}).
		Where("month = ? AND year = ?", month, year).
		Pluck("amount", &expenseAmounts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get expenses")
		return
	}

	supplyRows := make([]finance.SupplyRow, 0, len(supplies))
	for _, s := range supplies {
		supplyRows = append(supplyRows, finance.SupplyRow{Quantity: s.Quantity, Price: s.Price})
	}

	c.JSON(http.StatusOK, finance.Summarize(carServiceTotals, supplyRows, expenseAmounts))
}

// GetSupplierRollup returns supply totals grouped by parent supplier for one
// period, with parentless suppliers under the independent bucket.
func (rc *ReportController) GetSupplierRollup(c *gin.Context) {
	month, year, ok := periodParams(c)
	if !ok {
		return
	}

	var supplies []models.Supply
	if err := config.DB.Preload("Supplier.Parent").
		Where("month = ? AND year = ?", month, year).
		Find(&supplies).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get supplies")
		return
	}

	rows := make([]finance.RollupRow, 0, len(supplies))
	for _, s := range supplies {
		row := finance.RollupRow{Quantity: s.Quantity, Price: s.Price}
		if s.Supplier != nil {
			row.SupplierName = s.Supplier.Name
			if s.Supplier.Parent != nil {
				row.ParentName = s.Supplier.Parent.Name
			}
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, finance.Rollup(rows))
}
