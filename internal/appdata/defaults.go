package appdata

// EmptySummary is shown until the first platform is connected.
var EmptySummary = AnalyticsSummary{
	TotalFollowers:     "0k",
	EngagementRate:     "0%",
	NetProfit:          "$0",
	HighestContentType: "N/A",
	TopPerformingPost:  TopPost{Platform: "N/A", Type: "N/A"},
}

// SocialSummary replaces EmptySummary when the first social platform connects.
var SocialSummary = AnalyticsSummary{
	TotalFollowers:     "10.5k",
	EngagementRate:     "4.2%",
	NetProfit:          "$0",
	HighestContentType: "Carousel",
	TopPerformingPost:  TopPost{Platform: "Instagram", Type: "Carousel", Likes: 832, Comments: 102},
}

// StoreSummary is applied whenever a store platform connects.
var StoreSummary = AnalyticsSummary{
	TotalFollowers:     "12.8k",
	EngagementRate:     "4.5%",
	NetProfit:          "$2,450",
	HighestContentType: "Reel",
	TopPerformingPost:  TopPost{Platform: "Instagram", Type: "Reel", Likes: 1204, Comments: 230},
}

func defaultGrowthSeries() []GrowthPoint {
	return []GrowthPoint{
		{Name: "Jan", Followers: 400},
		{Name: "Feb", Followers: 600},
		{Name: "Mar", Followers: 900},
		{Name: "Apr", Followers: 1500},
		{Name: "May", Followers: 2300},
		{Name: "Jun", Followers: 3100},
	}
}

// StoreSeedIncome is injected when a store platform connects.
var StoreSeedIncome = []TransactionInput{
	{Description: "Soulful Biz Blueprint", Amount: 97, Category: "Products"},
	{Description: "1:1 Coaching Session", Amount: 250, Category: "Services"},
	{Description: "Digital Planner", Amount: 27, Category: "Products"},
}

// Default returns a fresh record for a new identity.
func Default() AppRecord {
	return AppRecord{
		AnalyticsSummary:    EmptySummary,
		GrowthSeries:        defaultGrowthSeries(),
		PlatformPerformance: []PlatformPerformance{},
		IncomeTransactions:  []Transaction{},
		ExpenseTransactions: []Transaction{},
		CustomTemplates:     []Template{},
		CalendarNotes:       map[int]string{15: "Start the big launch! ✨"},
		Wins:                []Win{},
		ConnectedPlatforms:  map[string]bool{},
		DailyLogs:           map[string]DailyLog{},
	}
}

// EmptyLog is the unsaved log shown for a date with no entry.
func EmptyLog(date string) DailyLog {
	return DailyLog{Date: date}
}
