// Package appdata owns the per-identity aggregate record: analytics
// summary, finances, planner notes, wins, daily logs and connected
// platforms. Every change goes through a named mutation on Store that
// replaces and persists the whole record.
package appdata

// DateLayout is the calendar date format used for transactions and daily logs.
const DateLayout = "2006-01-02"

type TemplateType string

const (
	TemplateSwipe    TemplateType = "swipe"
	TemplateCampaign TemplateType = "campaign"
)

func (t TemplateType) Valid() bool {
	return t == TemplateSwipe || t == TemplateCampaign
}

type Transaction struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

type Template struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Type    TemplateType `json:"type"`
}

type Win struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

// Ratings are 0–5 scores, 0 meaning "not rated".
type Ratings struct {
	Branding  int `json:"branding"`
	Business  int `json:"business"`
	Personal  int `json:"personal"`
	Financial int `json:"financial"`
	Mindset   int `json:"mindset"`
}

type LogNotes struct {
	Branding  string `json:"branding"`
	Business  string `json:"business"`
	Personal  string `json:"personal"`
	Financial string `json:"financial"`
	Mindset   string `json:"mindset"`
}

type DailyLog struct {
	Date        string   `json:"date"`
	Ratings     Ratings  `json:"ratings"`
	Notes       LogNotes `json:"notes"`
	WinOfTheDay string   `json:"winOfTheDay"`
}

type PlatformPerformance struct {
	Name       string  `json:"name"`
	Engagement float64 `json:"engagement"`
	Reach      int     `json:"reach"`
}

type TopPost struct {
	Platform string `json:"platform"`
	Type     string `json:"type"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}

type AnalyticsSummary struct {
	TotalFollowers     string  `json:"totalFollowers"`
	EngagementRate     string  `json:"engagementRate"`
	NetProfit          string  `json:"netProfit"`
	HighestContentType string  `json:"highestContentType"`
	TopPerformingPost  TopPost `json:"topPerformingPost"`
}

type GrowthPoint struct {
	Name      string `json:"name"`
	Followers int    `json:"followers"`
}

type FinancialSummary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// Onboarding holds the two answers given at signup.
type Onboarding struct {
	GrowthArea     string `json:"growth_area"`
	SuccessFeeling string `json:"success_feeling"`
}

// AppRecord is the whole state of one identity.
type AppRecord struct {
	AnalyticsSummary    AnalyticsSummary      `json:"analyticsSummary"`
	GrowthSeries        []GrowthPoint         `json:"growthData"`
	PlatformPerformance []PlatformPerformance `json:"platformPerformance"`
	FinancialSummary    FinancialSummary      `json:"financialSummary"`
	IncomeTransactions  []Transaction         `json:"incomeTransactions"`
	ExpenseTransactions []Transaction         `json:"expenseTransactions"`
	CustomTemplates     []Template            `json:"customTemplates"`
	// CalendarNotes is keyed by day of month only; the same day in
	// different months shares one note.
	CalendarNotes      map[int]string      `json:"calendarNotes"`
	Wins               []Win               `json:"wins"`
	ConnectedPlatforms map[string]bool     `json:"connectedPlatforms"`
	DailyLogs          map[string]DailyLog `json:"dailyLogs"`
	OnboardingData     *Onboarding         `json:"onboardingData,omitempty"`
}

// TransactionInput is what a caller supplies for a new income or expense.
type TransactionInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

type TemplateInput struct {
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Type    TemplateType `json:"type"`
}
