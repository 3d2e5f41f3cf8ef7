package appdata

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/catalog"
	"github.com/shopspring/decimal"
)

// The reducers below are pure: they take a private copy of the record and
// return the next one. Store owns locking and persistence.

func millis(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

func calendarDate(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// timestamp matches the ISO form the web client produced, with milliseconds.
func timestamp(now time.Time) string {
	return now.UTC().Format("2006-01-02T15:04:05.000Z")
}

func sumAmounts(ts []Transaction) float64 {
	total := decimal.Zero
	for _, t := range ts {
		total = total.Add(decimal.NewFromFloat(t.Amount))
	}
	f, _ := total.Float64()
	return f
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func validateTransaction(in TransactionInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrEmptyDescription
	}
	if !validAmount(in.Amount) {
		return ErrInvalidAmount
	}
	return nil
}

func clone(rec AppRecord) AppRecord {
	out := rec
	out.GrowthSeries = slices.Clone(rec.GrowthSeries)
	out.PlatformPerformance = slices.Clone(rec.PlatformPerformance)
	out.IncomeTransactions = slices.Clone(rec.IncomeTransactions)
	out.ExpenseTransactions = slices.Clone(rec.ExpenseTransactions)
	out.CustomTemplates = slices.Clone(rec.CustomTemplates)
	out.Wins = slices.Clone(rec.Wins)
	out.CalendarNotes = maps.Clone(rec.CalendarNotes)
	out.ConnectedPlatforms = maps.Clone(rec.ConnectedPlatforms)
	out.DailyLogs = maps.Clone(rec.DailyLogs)
	if rec.OnboardingData != nil {
		ob := *rec.OnboardingData
		out.OnboardingData = &ob
	}
	return out
}

// connectPlatform marks p connected. changed is false when it already was.
func connectPlatform(rec AppRecord, p catalog.Platform, now time.Time) (next AppRecord, changed bool) {
	if rec.ConnectedPlatforms[p.Name] {
		return rec, false
	}
	firstConnection := len(rec.ConnectedPlatforms) == 0

	rec.ConnectedPlatforms[p.Name] = true
	rec.PlatformPerformance = append(rec.PlatformPerformance, PlatformPerformance{
		Name:       p.Name,
		Engagement: p.Engagement,
		Reach:      p.Reach,
	})

	switch {
	case p.IsStore():
		seeded := make([]Transaction, 0, len(StoreSeedIncome)+len(rec.IncomeTransactions))
		for i, item := range StoreSeedIncome {
			seeded = append(seeded, Transaction{
				ID:          p.IDPrefix() + "-" + millis(now) + "-" + strconv.Itoa(i),
				Description: item.Description,
				Amount:      item.Amount,
				Date:        calendarDate(now),
				Category:    item.Category,
			})
		}
		rec.IncomeTransactions = append(seeded, rec.IncomeTransactions...)
		rec.FinancialSummary.Income = sumAmounts(rec.IncomeTransactions)
		rec.AnalyticsSummary = StoreSummary
	case firstConnection:
		rec.AnalyticsSummary = SocialSummary
	}
	return rec, true
}

// disconnectPlatform removes p. A store takes its seeded income with it.
// Removing the last platform resets the analytics and income side of the
// record; expenses, notes, wins, templates and logs survive.
func disconnectPlatform(rec AppRecord, p catalog.Platform) (next AppRecord, changed bool) {
	if !rec.ConnectedPlatforms[p.Name] {
		return rec, false
	}
	delete(rec.ConnectedPlatforms, p.Name)

	if p.IsStore() {
		prefix := p.IDPrefix() + "-"
		rec.IncomeTransactions = slices.DeleteFunc(rec.IncomeTransactions, func(t Transaction) bool {
			return strings.HasPrefix(t.ID, prefix)
		})
		rec.FinancialSummary.Income = sumAmounts(rec.IncomeTransactions)
	}

	if len(rec.ConnectedPlatforms) == 0 {
		rec.AnalyticsSummary = EmptySummary
		rec.PlatformPerformance = []PlatformPerformance{}
		rec.GrowthSeries = defaultGrowthSeries()
		rec.IncomeTransactions = []Transaction{}
		rec.FinancialSummary.Income = 0
		return rec, true
	}

	rec.PlatformPerformance = slices.DeleteFunc(rec.PlatformPerformance, func(perf PlatformPerformance) bool {
		return perf.Name == p.Name
	})
	return rec, true
}

func addIncome(rec AppRecord, in TransactionInput, now time.Time) AppRecord {
	rec.IncomeTransactions = append([]Transaction{{
		ID:          "manual-" + millis(now),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        calendarDate(now),
		Category:    in.Category,
	}}, rec.IncomeTransactions...)
	rec.FinancialSummary.Income = sumAmounts(rec.IncomeTransactions)
	return rec
}

func addExpense(rec AppRecord, in TransactionInput, now time.Time) AppRecord {
	rec.ExpenseTransactions = append([]Transaction{{
		ID:          millis(now),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        calendarDate(now),
		Category:    in.Category,
	}}, rec.ExpenseTransactions...)
	rec.FinancialSummary.Expenses = sumAmounts(rec.ExpenseTransactions)
	return rec
}

func addTemplate(rec AppRecord, in TemplateInput, now time.Time) AppRecord {
	rec.CustomTemplates = append(rec.CustomTemplates, Template{
		ID:      millis(now),
		Title:   in.Title,
		Content: in.Content,
		Type:    in.Type,
	})
	return rec
}

// updateCalendarNote sets the note for day; a blank note deletes it.
func updateCalendarNote(rec AppRecord, day int, note string) AppRecord {
	if strings.TrimSpace(note) == "" {
		delete(rec.CalendarNotes, day)
		return rec
	}
	rec.CalendarNotes[day] = note
	return rec
}

// addNoteForToday prepends a bullet to today's day-of-month note.
func addNoteForToday(rec AppRecord, text string, now time.Time) AppRecord {
	day := now.Day()
	note := "- " + text
	if existing := rec.CalendarNotes[day]; existing != "" {
		note += "\n" + existing
	}
	return updateCalendarNote(rec, day, note)
}

func addWin(rec AppRecord, text string, now time.Time) AppRecord {
	rec.Wins = append([]Win{{
		ID:   millis(now),
		Text: text,
		Date: timestamp(now),
	}}, rec.Wins...)
	return rec
}

func saveDailyLog(rec AppRecord, log DailyLog) AppRecord {
	rec.DailyLogs[log.Date] = log
	return rec
}

func validateDailyLog(log DailyLog) error {
	if _, err := time.Parse(DateLayout, log.Date); err != nil {
		return ErrInvalidDate
	}
	for _, r := range []int{log.Ratings.Branding, log.Ratings.Business, log.Ratings.Personal, log.Ratings.Financial, log.Ratings.Mindset} {
		if r < 0 || r > 5 {
			return ErrInvalidRating
		}
	}
	return nil
}

// perturbFollowers nudges a display count such as "12.8k" up by 0.1k.
// A value with no leading number counts as zero.
func perturbFollowers(display string) string {
	return parseLeadingDecimal(display).Add(decimal.New(1, -1)).StringFixed(1) + "k"
}

func parseLeadingDecimal(s string) decimal.Decimal {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	dot := false
scan:
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			end = i + 1
		case r == '.' && !dot:
			dot = true
		case (r == '-' || r == '+') && i == 0:
		default:
			break scan
		}
	}
	d, err := decimal.NewFromString(s[:end])
	if err != nil {
		return decimal.Zero
	}
	return d
}

func syncData(rec AppRecord) AppRecord {
	rec.AnalyticsSummary.TotalFollowers = perturbFollowers(rec.AnalyticsSummary.TotalFollowers)
	return rec
}
