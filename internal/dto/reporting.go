package dto

import (
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// LetterStatisticsRequest defines the parameters for the dashboard statistics.
// Dates are parsed by the handler; zero values mean unbounded.
type LetterStatisticsRequest struct {
	Year int `form:"year"`
	From time.Time
	To   time.Time
}

// ExportLetterReportRequest defines the parameters for a CSV report export.
// Dates are parsed by the handler.
type ExportLetterReportRequest struct {
	Kind string `form:"kind" binding:"omitempty,oneof=INCOMING OUTGOING"`
	From time.Time
	To   time.Time
}

// MonthlyLetterCountResponse represents combined letter volume for one month.
type MonthlyLetterCountResponse struct {
	Month    int   `json:"month"`
	Incoming int64 `json:"incoming"`
	Outgoing int64 `json:"outgoing"`
}

// CategoryLetterCountResponse represents letter volume for one category.
type CategoryLetterCountResponse struct {
	CategoryName string `json:"categoryName"`
	Count        int64  `json:"count"`
}

// StatusCountResponse represents a count of records in one status.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// LetterStatisticsResponse represents the dashboard statistics response.
type LetterStatisticsResponse struct {
	Year           int                           `json:"year"`
	TotalIncoming  int64                         `json:"totalIncoming"`
	TotalOutgoing  int64                         `json:"totalOutgoing"`
	TotalRouting   int64                         `json:"totalRouting"`
	TotalArchived  int64                         `json:"totalArchived"`
	PerMonth       []MonthlyLetterCountResponse  `json:"perMonth"`
	PerCategory    []CategoryLetterCountResponse `json:"perCategory"`
	IncomingStatus []StatusCountResponse         `json:"incomingStatus"`
	OutgoingStatus []StatusCountResponse         `json:"outgoingStatus"`
	RoutingStatus  []StatusCountResponse         `json:"routingStatus"`
}

// ToLetterStatisticsResponse converts domain statistics to a DTO response
func ToLetterStatisticsResponse(stats *domain.LetterStatistics) LetterStatisticsResponse {
	response := LetterStatisticsResponse{
		Year:           stats.Year,
		TotalIncoming:  stats.TotalIncoming,
		TotalOutgoing:  stats.TotalOutgoing,
		TotalRouting:   stats.TotalRouting,
		TotalArchived:  stats.TotalArchived,
		PerMonth:       make([]MonthlyLetterCountResponse, len(stats.PerMonth)),
		PerCategory:    make([]CategoryLetterCountResponse, len(stats.PerCategory)),
		IncomingStatus: make([]StatusCountResponse, len(stats.IncomingStatus)),
		OutgoingStatus: make([]StatusCountResponse, len(stats.OutgoingStatus)),
		RoutingStatus:  make([]StatusCountResponse, len(stats.RoutingStatus)),
	}

	for i, row := range stats.PerMonth {
		response.PerMonth[i] = MonthlyLetterCountResponse{
			Month:    row.Month,
			Incoming: row.Incoming,
			Outgoing: row.Outgoing,
		}
	}
	for i, row := range stats.PerCategory {
		response.PerCategory[i] = CategoryLetterCountResponse{
			CategoryName: row.CategoryName,
			Count:        row.Count,
		}
	}
	for i, row := range stats.IncomingStatus {
		response.IncomingStatus[i] = StatusCountResponse{Status: row.Status, Count: row.Count}
	}
	for i, row := range stats.OutgoingStatus {
		response.OutgoingStatus[i] = StatusCountResponse{Status: row.Status, Count: row.Count}
	}
	for i, row := range stats.RoutingStatus {
		response.RoutingStatus[i] = StatusCountResponse{Status: row.Status, Count: row.Count}
	}

	return response
}
