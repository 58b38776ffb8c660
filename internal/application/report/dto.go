package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const recentEntryLimit = 10

// DashboardResponse represents the earnings dashboard aggregates
type DashboardResponse struct {
	TotalEarnings   float64                  `json:"totalEarnings"`
	WeeklyEarnings  float64                  `json:"weeklyEarnings"`
	MonthlyEarnings float64                  `json:"monthlyEarnings"`
	ByClient        []ClientEarningsResponse `json:"byClient"`
	RecentEntries   []RecentEntryResponse    `json:"recentEntries"`
}

// ClientEarningsResponse is one per-client earnings group
type ClientEarningsResponse struct {
	ClientName string  `json:"clientName"`
	Hours      float64 `json:"hours"`
	Earnings   float64 `json:"earnings"`
}

// RecentEntryResponse is one row of the recent-entries list
type RecentEntryResponse struct {
	ID         uuid.UUID  `json:"id"`
	ClientName string     `json:"clientName"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	Hours      float64    `json:"hours"`
	Earnings   float64    `json:"earnings"`
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
