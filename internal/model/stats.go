package model

// CategoryCount is one bar of the admin chart: applications per scholarship category.
type CategoryCount struct {
	Category string `json:"_id"`
	Count    int64  `json:"count"`
}

// AdminStats is the dashboard summary. Its numbers come from separate reads
// and are not taken from one snapshot.
type AdminStats struct {
	TotalUsers        int64           `json:"totalUsers"`
	TotalScholarships int64           `json:"totalScholarships"`
	TotalApplications int64           `json:"totalApplications"`
	TotalRevenue      float64         `json:"totalRevenue"`
	ChartData         []CategoryCount `json:"chartData"`
}
