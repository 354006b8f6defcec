package database

import (
	"time"

	"cakehouse-pos/internal/models"

	"gorm.io/gorm"
)

// Products with less stock than this show up on the dashboard warning.
const LowStockCutoff = 5

// DailyStats is what the dashboard cards render
type DailyStats struct {
	DailySales    float64 `json:"dailySales"`
	TotalOrders   int64   `json:"totalOrders"`
	LowStockCount int64   `json:"lowStockCount"`
}

// SalesPoint is one bar of the weekly sales chart
type SalesPoint struct {
	Name  string  `json:"name"` // short weekday, e.g. "Mon"
	Sales float64 `json:"sales"`
}

// dayBounds returns [00:00, next midnight) for the day containing t.
// Comparing against bounds instead of date(created_at) keeps the query
// identical on sqlite and mysql.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// GetDailyStats aggregates today's sales, today's order count and the
// number of products running low.
func GetDailyStats(db *gorm.DB, now time.Time) (*DailyStats, error) {
	start, end := dayBounds(now)
	var stats DailyStats

	// COALESCE ensures we get 0 instead of NULL if no sales exist
	err := db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.DailySales).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&stats.TotalOrders).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Product{}).
		Where("stock_quantity < ?", LowStockCutoff).
		Count(&stats.LowStockCount).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetWeeklySales returns the trailing 7 days of sales, oldest first,
// labelled with short weekday names for the chart axis.
func GetWeeklySales(db *gorm.DB, now time.Time) ([]SalesPoint, error) {
	points := make([]SalesPoint, 0, 7)

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start, end := dayBounds(day)

		var total float64
		err := db.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", start, end).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&total).Error
		if err != nil {
			return nil, err
		}

		points = append(points, SalesPoint{
			Name:  day.Format("Mon"),
			Sales: total,
		})
	}

	return points, nil
}
