package domain

// MonthlyLetterCount represents letter volume for one calendar month.
type MonthlyLetterCount struct {
	Month    int   `json:"month"` // 1-12
	Incoming int64 `json:"incoming"`
	Outgoing int64 `json:"outgoing"`
}

// CategoryLetterCount represents combined letter volume for one category.
type CategoryLetterCount struct {
	CategoryName string `json:"categoryName"`
	Count        int64  `json:"count"`
}

// StatusCount represents how many records currently carry a given status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// LetterStatistics is the aggregate view backing the dashboard.
type LetterStatistics struct {
	Year           int                   `json:"year"`
	TotalIncoming  int64                 `json:"totalIncoming"`
	TotalOutgoing  int64                 `json:"totalOutgoing"`
	TotalRouting   int64                 `json:"totalRouting"`
	TotalArchived  int64                 `json:"totalArchived"`
	PerMonth       []MonthlyLetterCount  `json:"perMonth"`
	PerCategory    []CategoryLetterCount `json:"perCategory"`
	IncomingStatus []StatusCount         `json:"incomingStatus"`
	OutgoingStatus []StatusCount         `json:"outgoingStatus"`
	RoutingStatus  []StatusCount         `json:"routingStatus"`
}
