package appdata

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/identity"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "maya@example.com"

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *kvstore.Memory) {
	t.Helper()
	kv := kvstore.NewMemory()
	s := NewStore(kv, catalog.Default(),
		WithClock(func() time.Time { return fixedNow }),
		WithSyncDelay(time.Millisecond),
	)
	return s, kv
}

func loadedStore(t *testing.T) (*Store, *kvstore.Memory) {
	t.Helper()
	s, kv := newTestStore(t)
	require.NoError(t, s.Load(context.Background(), testUser))
	return s, kv
}

func snapshot(t *testing.T, s *Store) AppRecord {
	t.Helper()
	rec, ok := s.Snapshot()
	require.True(t, ok)
	return rec
}

func TestLoad_AbsentRecordPersistsDefaults(t *testing.T) {
	s, kv := loadedStore(t)

	assert.True(t, s.Ready())
	rec := snapshot(t, s)
	assert.Equal(t, EmptySummary, rec.AnalyticsSummary)
	assert.Equal(t, "Start the big launch! ✨", rec.CalendarNotes[15])
	assert.Len(t, rec.GrowthSeries, 6)

	raw, ok, err := kv.Get(context.Background(), kvstore.DataKey(testUser))
	require.NoError(t, err)
	require.True(t, ok)
	var env struct {
		Version int `json:"version"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	assert.Equal(t, RecordVersion, env.Version)
}

func TestLoad_CorruptRecordFallsBackWithoutOverwriting(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, kvstore.DataKey(testUser), "{not json"))

	require.NoError(t, s.Load(ctx, testUser))

	assert.Equal(t, EmptySummary, snapshot(t, s).AnalyticsSummary)
	raw, _, _ := kv.Get(ctx, kvstore.DataKey(testUser))
	assert.Equal(t, "{not json", raw)
}

func TestLoad_ReadsOnboarding(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, kvstore.OnboardingKey(testUser), `{"growth_area":"Branding","success_feeling":"Free"}`))

	require.NoError(t, s.Load(ctx, testUser))

	ob, ok := s.Onboarding()
	require.True(t, ok)
	assert.Equal(t, "Branding", ob.GrowthArea)
	assert.Equal(t, "Free", ob.SuccessFeeling)
}

func TestLoad_MalformedOnboardingIgnored(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, kvstore.OnboardingKey(testUser), `[]`))

	require.NoError(t, s.Load(ctx, testUser))

	_, ok := s.Onboarding()
	assert.False(t, ok)
}

func TestMutations_IgnoredBeforeLoad(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddIncome(ctx, TransactionInput{Description: "x", Amount: 10}))
	require.NoError(t, s.ConnectPlatform(ctx, "Instagram"))

	assert.False(t, s.Ready())
	_, ok, _ := kv.Get(ctx, kvstore.DataKey(testUser))
	assert.False(t, ok)
}

func TestScenario_StoreConnectAndDisconnect(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddIncome(ctx, TransactionInput{Description: "Coaching", Amount: 250, Category: "Services"}))
	rec := snapshot(t, s)
	require.Len(t, rec.IncomeTransactions, 1)
	assert.Equal(t, 250.0, rec.FinancialSummary.Income)
	assert.Equal(t, "manual-1710496800000", rec.IncomeTransactions[0].ID)
	assert.Equal(t, "2024-03-15", rec.IncomeTransactions[0].Date)

	require.NoError(t, s.ConnectPlatform(ctx, "Stan Store"))
	rec = snapshot(t, s)
	assert.Equal(t, 624.0, rec.FinancialSummary.Income)
	require.Len(t, rec.PlatformPerformance, 1)
	assert.Equal(t, PlatformPerformance{Name: "Stan Store", Engagement: 15.3, Reach: 1800}, rec.PlatformPerformance[0])
	assert.Equal(t, StoreSummary, rec.AnalyticsSummary)
	require.Len(t, rec.IncomeTransactions, 4)
	assert.Equal(t, "StanStore-1710496800000-0", rec.IncomeTransactions[0].ID)
	assert.Equal(t, "Soulful Biz Blueprint", rec.IncomeTransactions[0].Description)
	assert.Equal(t, "manual-1710496800000", rec.IncomeTransactions[3].ID)

	require.NoError(t, s.AddExpense(ctx, TransactionInput{Description: "Canva", Amount: 12.99, Category: "Software"}))
	require.NoError(t, s.AddWin(ctx, "First sale"))

	require.NoError(t, s.DisconnectPlatform(ctx, "Stan Store"))
	rec = snapshot(t, s)
	assert.Equal(t, 0.0, rec.FinancialSummary.Income)
	assert.Empty(t, rec.IncomeTransactions)
	assert.Empty(t, rec.PlatformPerformance)
	assert.Empty(t, rec.ConnectedPlatforms)
	assert.Equal(t, EmptySummary, rec.AnalyticsSummary)
	assert.Len(t, rec.ExpenseTransactions, 1)
	assert.Equal(t, 12.99, rec.FinancialSummary.Expenses)
	assert.Len(t, rec.Wins, 1)
}

func TestDisconnect_StoreDropsSeededIncomeWhileOtherPlatformsRemain(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddIncome(ctx, TransactionInput{Description: "Coaching", Amount: 250, Category: "Services"}))
	require.NoError(t, s.ConnectPlatform(ctx, "Instagram"))
	require.NoError(t, s.ConnectPlatform(ctx, "Stan Store"))
	require.NoError(t, s.DisconnectPlatform(ctx, "Stan Store"))

	rec := snapshot(t, s)
	assert.Equal(t, 250.0, rec.FinancialSummary.Income)
	require.Len(t, rec.IncomeTransactions, 1)
	assert.Equal(t, "manual-1710496800000", rec.IncomeTransactions[0].ID)
	require.Len(t, rec.PlatformPerformance, 1)
	assert.Equal(t, "Instagram", rec.PlatformPerformance[0].Name)
	assert.Equal(t, map[string]bool{"Instagram": true}, rec.ConnectedPlatforms)
}

func TestDisconnect_OneStoreKeepsTheOthersIncome(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.ConnectPlatform(ctx, "Beacon.AI Store"))
	require.NoError(t, s.ConnectPlatform(ctx, "Stan Store"))
	require.NoError(t, s.AddIncome(ctx, TransactionInput{Description: "Workshop", Amount: 100}))
	require.Len(t, snapshot(t, s).IncomeTransactions, 7)

	require.NoError(t, s.DisconnectPlatform(ctx, "Stan Store"))

	rec := snapshot(t, s)
	require.Len(t, rec.IncomeTransactions, 4)
	for _, tx := range rec.IncomeTransactions {
		assert.False(t, strings.HasPrefix(tx.ID, "StanStore-"), tx.ID)
	}
	assert.Equal(t, "manual-1710496800000", rec.IncomeTransactions[0].ID)
	assert.Equal(t, "Beacon.AIStore-1710496800000-0", rec.IncomeTransactions[1].ID)
	assert.Equal(t, 474.0, rec.FinancialSummary.Income)
	assert.Equal(t, map[string]bool{"Beacon.AI Store": true}, rec.ConnectedPlatforms)
	assert.Equal(t, StoreSummary, rec.AnalyticsSummary)
}

func TestConnect_FirstSocialSetsSummary(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.ConnectPlatform(ctx, "TikTok"))
	assert.Equal(t, SocialSummary, snapshot(t, s).AnalyticsSummary)

	// a second social platform leaves the summary alone
	require.NoError(t, s.SyncData(ctx))
	require.NoError(t, s.ConnectPlatform(ctx, "Threads"))
	assert.Equal(t, "10.6k", snapshot(t, s).AnalyticsSummary.TotalFollowers)
}

func TestConnect_TwiceIsIdempotent(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.ConnectPlatform(ctx, "Beacon.AI Store"))
	first := snapshot(t, s)
	require.NoError(t, s.ConnectPlatform(ctx, "Beacon.AI Store"))
	second := snapshot(t, s)

	assert.Equal(t, first, second)
	assert.Len(t, second.PlatformPerformance, 1)
	assert.Len(t, second.IncomeTransactions, 3)
}

func TestConnect_UnknownPlatform(t *testing.T) {
	s, _ := loadedStore(t)
	err := s.ConnectPlatform(context.Background(), "MySpace")
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestDisconnect_NeverConnectedLeavesRecordUnchanged(t *testing.T) {
	s, kv := loadedStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddExpense(ctx, TransactionInput{Description: "Ads", Amount: 40}))
	before := snapshot(t, s)
	rawBefore, _, _ := kv.Get(ctx, kvstore.DataKey(testUser))

	require.NoError(t, s.DisconnectPlatform(ctx, "YouTube"))

	assert.Equal(t, before, snapshot(t, s))
	rawAfter, _, _ := kv.Get(ctx, kvstore.DataKey(testUser))
	assert.Equal(t, rawBefore, rawAfter)
}

func TestTotalsMatchTransactionSums(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	amounts := []float64{0.1, 0.2, 19.99, 100, 0}
	for _, a := range amounts {
		require.NoError(t, s.AddIncome(ctx, TransactionInput{Description: "in", Amount: a}))
		require.NoError(t, s.AddExpense(ctx, TransactionInput{Description: "out", Amount: a}))

		rec := snapshot(t, s)
		assert.Equal(t, sumAmounts(rec.IncomeTransactions), rec.FinancialSummary.Income)
		assert.Equal(t, sumAmounts(rec.ExpenseTransactions), rec.FinancialSummary.Expenses)
	}
	rec := snapshot(t, s)
	assert.Equal(t, 120.29, rec.FinancialSummary.Income)
	assert.Equal(t, 0.0, rec.NetProfit())
}

func TestTransactionValidation(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.AddIncome(ctx, TransactionInput{Description: "x", Amount: -1}), ErrInvalidAmount)
	assert.ErrorIs(t, s.AddExpense(ctx, TransactionInput{Description: " ", Amount: 1}), ErrEmptyDescription)
	assert.Empty(t, snapshot(t, s).IncomeTransactions)
}

func TestCalendarNotes(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpdateCalendarNote(ctx, 3, "x"))
	assert.Equal(t, "x", snapshot(t, s).CalendarNotes[3])

	require.NoError(t, s.UpdateCalendarNote(ctx, 3, ""))
	_, ok := snapshot(t, s).CalendarNotes[3]
	assert.False(t, ok)

	require.NoError(t, s.UpdateCalendarNote(ctx, 15, "  "))
	_, ok = snapshot(t, s).CalendarNotes[15]
	assert.False(t, ok)

	assert.ErrorIs(t, s.UpdateCalendarNote(ctx, 0, "x"), ErrInvalidDay)
	assert.ErrorIs(t, s.UpdateCalendarNote(ctx, 32, "x"), ErrInvalidDay)
}

func TestAddNoteForToday_PrependsToTodaysDay(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddNoteForToday(ctx, "Film reel"))
	assert.Equal(t, "- Film reel\nStart the big launch! ✨", snapshot(t, s).CalendarNotes[15])

	require.NoError(t, s.UpdateCalendarNote(ctx, 15, ""))
	require.NoError(t, s.AddNoteForToday(ctx, "Rest"))
	assert.Equal(t, "- Rest", snapshot(t, s).CalendarNotes[15])

	assert.ErrorIs(t, s.AddNoteForToday(ctx, ""), ErrEmptyNote)
}

func TestAddTemplate(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddTemplate(ctx, TemplateInput{Title: "Hook", Content: "Stop scrolling", Type: TemplateSwipe}))
	rec := snapshot(t, s)
	require.Len(t, rec.CustomTemplates, 1)
	assert.Equal(t, "1710496800000", rec.CustomTemplates[0].ID)

	assert.ErrorIs(t, s.AddTemplate(ctx, TemplateInput{Title: "a", Content: "b", Type: "reel"}), ErrInvalidTemplateType)
	assert.ErrorIs(t, s.AddTemplate(ctx, TemplateInput{Title: "", Content: "b", Type: TemplateCampaign}), ErrEmptyTemplate)
}

func TestAddWin_NewestFirst(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddWin(ctx, "one"))
	require.NoError(t, s.AddWin(ctx, "  two "))
	rec := snapshot(t, s)
	require.Len(t, rec.Wins, 2)
	assert.Equal(t, "two", rec.Wins[0].Text)
	assert.Equal(t, "2024-03-15T10:00:00.000Z", rec.Wins[0].Date)
	assert.ErrorIs(t, s.AddWin(ctx, " "), ErrEmptyWin)
}

func TestSaveDailyLog_Idempotent(t *testing.T) {
	s, kv := loadedStore(t)
	ctx := context.Background()
	log := DailyLog{
		Date:        "2024-03-15",
		Ratings:     Ratings{Branding: 4, Mindset: 5},
		Notes:       LogNotes{Business: "Pitched two brands"},
		WinOfTheDay: "Shipped",
	}

	require.NoError(t, s.SaveDailyLog(ctx, log))
	once, _, _ := kv.Get(ctx, kvstore.DataKey(testUser))
	require.NoError(t, s.SaveDailyLog(ctx, log))
	twice, _, _ := kv.Get(ctx, kvstore.DataKey(testUser))

	assert.Equal(t, once, twice)
	assert.Equal(t, log, snapshot(t, s).LogFor("2024-03-15"))
}

func TestSaveDailyLog_Validation(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.SaveDailyLog(ctx, DailyLog{Date: "15/03/2024"}), ErrInvalidDate)
	assert.ErrorIs(t, s.SaveDailyLog(ctx, DailyLog{Date: "2024-03-15", Ratings: Ratings{Personal: 6}}), ErrInvalidRating)
}

func TestSyncData(t *testing.T) {
	s, _ := loadedStore(t)
	ctx := context.Background()
	require.NoError(t, s.ConnectPlatform(ctx, "Stan Store"))

	require.NoError(t, s.SyncData(ctx))

	assert.Equal(t, "12.9k", snapshot(t, s).AnalyticsSummary.TotalFollowers)
	assert.False(t, s.IsSyncing())
}

func TestSyncData_CancelledContext(t *testing.T) {
	kv := kvstore.NewMemory()
	s := NewStore(kv, catalog.Default(), WithSyncDelay(time.Hour))
	require.NoError(t, s.Load(context.Background(), testUser))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.SyncData(ctx), context.Canceled)
	assert.Equal(t, "0k", snapshot(t, s).AnalyticsSummary.TotalFollowers)
	assert.False(t, s.IsSyncing())
}

func TestAttach_ReloadsOnIdentityChange(t *testing.T) {
	kv := kvstore.NewMemory()
	s := NewStore(kv, catalog.Default(), WithClock(func() time.Time { return fixedNow }))
	holder := identity.NewHolder(kv)
	s.Attach(holder)
	ctx := context.Background()

	require.NoError(t, holder.Login(ctx, "a@example.com"))
	require.True(t, s.Ready())
	require.NoError(t, s.AddWin(ctx, "a's win"))

	require.NoError(t, holder.Login(ctx, "b@example.com"))
	assert.Equal(t, "b@example.com", s.Identity())
	assert.Empty(t, snapshot(t, s).Wins)

	require.NoError(t, holder.Logout(ctx))
	assert.False(t, s.Ready())

	require.NoError(t, holder.Login(ctx, "a@example.com"))
	rec := snapshot(t, s)
	require.Len(t, rec.Wins, 1)
	assert.Equal(t, "a's win", rec.Wins[0].Text)
}

func TestSaveOnboarding_UpdatesLoadedRecord(t *testing.T) {
	s, kv := loadedStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveOnboarding(ctx, testUser, Onboarding{GrowthArea: "Business", SuccessFeeling: "Calm"}))

	ob, ok := s.Onboarding()
	require.True(t, ok)
	assert.Equal(t, "Calm", ob.SuccessFeeling)
	raw, ok, _ := kv.Get(ctx, kvstore.OnboardingKey(testUser))
	require.True(t, ok)
	assert.JSONEq(t, `{"growth_area":"Business","success_feeling":"Calm"}`, raw)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s, _ := loadedStore(t)
	rec := snapshot(t, s)
	rec.CalendarNotes[1] = "mutated"
	rec.Wins = append(rec.Wins, Win{Text: "mutated"})

	again := snapshot(t, s)
	assert.NotContains(t, again.CalendarNotes, 1)
	assert.Empty(t, again.Wins)
}
