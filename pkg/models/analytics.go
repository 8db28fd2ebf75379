package models

// Analytics is a precomputed reporting snapshot supplied by the fixture
// backend. The store treats it as opaque: it is never recomputed from the
// other collections, only replaced wholesale on hydrate.
type Analytics struct {
	SalesForecast    SalesForecast    `json:"salesForecast"`
	PipelineAnalysis PipelineAnalysis `json:"pipelineAnalysis"`
	SalesPerformance SalesPerformance `json:"salesPerformance"`
	CustomerAnalysis CustomerAnalysis `json:"customerAnalysis"`
	ActivityMetrics  ActivityMetrics  `json:"activityMetrics"`
}

type SalesForecast struct {
	CurrentMonth struct {
		Target    float64 `json:"target"`
		Achieved  float64 `json:"achieved"`
		Progress  float64 `json:"progress"`
		Remaining float64 `json:"remaining"`
	} `json:"currentMonth"`
	QuarterlyForecast []MonthlyForecast `json:"quarterlyForecast"`
}

type MonthlyForecast struct {
	Month    string  `json:"month"`
	Target   float64 `json:"target"`
	Achieved float64 `json:"achieved"`
	Forecast float64 `json:"forecast"`
}

// PipelineAnalysis carries the canonical pipeline stage list: the kanban view
// groups opportunities into exactly the StageDistribution buckets.
type PipelineAnalysis struct {
	TotalValue        float64         `json:"totalValue"`
	WeightedValue     float64         `json:"weightedValue"`
	AverageDealSize   float64         `json:"averageDealSize"`
	ConversionRate    float64         `json:"conversionRate"`
	SalesCycle        float64         `json:"salesCycle"`
	StageDistribution []StageAnalysis `json:"stageDistribution"`
}

type StageAnalysis struct {
	Stage       string  `json:"stage"`
	Count       int     `json:"count"`
	Value       float64 `json:"value"`
	Probability int     `json:"probability"`
}

type SalesPerformance struct {
	TotalRevenue float64          `json:"totalRevenue"`
	SalesTeam    []RepPerformance `json:"salesTeam"`
}

type RepPerformance struct {
	Name        string  `json:"name"`
	Target      float64 `json:"target"`
	Achieved    float64 `json:"achieved"`
	Progress    float64 `json:"progress"`
	Deals       int     `json:"deals"`
	AvgDealSize float64 `json:"avgDealSize"`
}

type CustomerAnalysis struct {
	TotalCustomers          int                `json:"totalCustomers"`
	ActiveCustomers         int                `json:"activeCustomers"`
	NewCustomersThisMonth   int                `json:"newCustomersThisMonth"`
	CustomerRetentionRate   float64            `json:"customerRetentionRate"`
	IndustryDistribution    []SegmentCount     `json:"industryDistribution"`
	CompanySizeDistribution []SegmentSizeCount `json:"companySizeDistribution"`
}

type SegmentCount struct {
	Industry   string  `json:"industry"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type SegmentSizeCount struct {
	Size       string  `json:"size"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ActivityMetrics struct {
	TotalCalls          int               `json:"totalCalls"`
	TotalEmails         int               `json:"totalEmails"`
	TotalMeetings       int               `json:"totalMeetings"`
	TotalVisits         int               `json:"totalVisits"`
	AverageResponseTime float64           `json:"averageResponseTime"`
	MonthlyActivity     []MonthlyActivity `json:"monthlyActivity"`
}

type MonthlyActivity struct {
	Month    string `json:"month"`
	Calls    int    `json:"calls"`
	Emails   int    `json:"emails"`
	Meetings int    `json:"meetings"`
	Visits   int    `json:"visits"`
}

// PipelineStages returns the ordered canonical stage labels from the
// analytics snapshot.
func (a *Analytics) PipelineStages() []string {
	stages := make([]string, 0, len(a.PipelineAnalysis.StageDistribution))
	for _, s := range a.PipelineAnalysis.StageDistribution {
		stages = append(stages, s.Stage)
	}
	return stages
}
