package appdata

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// RecordVersion is the envelope version written by Encode.
const RecordVersion = 1

type envelope struct {
	Version int       `json:"version"`
	Record  AppRecord `json:"record"`
}

// Encode wraps rec in the versioned envelope.
func Encode(rec AppRecord) ([]byte, error) {
	return json.Marshal(envelope{Version: RecordVersion, Record: rec})
}

// Decode reads a stored record. Unversioned blobs written by older builds
// are accepted and reported through legacy so the caller can rewrite them.
// Known fields are decoded one at a time onto Default(); a field whose
// shape is wrong is dropped with a warning and the default kept.
func Decode(raw []byte) (rec AppRecord, legacy bool, err error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return AppRecord{}, false, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if top == nil {
		return AppRecord{}, false, fmt.Errorf("%w: null document", ErrCorruptRecord)
	}

	fields := top
	if v, ok := top["version"]; ok {
		var version int
		if err := json.Unmarshal(v, &version); err != nil {
			return AppRecord{}, false, fmt.Errorf("%w: version: %v", ErrCorruptRecord, err)
		}
		if version > RecordVersion {
			return AppRecord{}, false, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
		}
		body, ok := top["record"]
		if !ok {
			return AppRecord{}, false, fmt.Errorf("%w: missing record", ErrCorruptRecord)
		}
		fields = nil
		if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
			return AppRecord{}, false, fmt.Errorf("%w: record body", ErrCorruptRecord)
		}
	} else {
		legacy = true
	}

	rec = Default()
	decodeField(fields, "analyticsSummary", &rec.AnalyticsSummary)
	decodeField(fields, "growthData", &rec.GrowthSeries)
	decodeField(fields, "platformPerformance", &rec.PlatformPerformance)
	decodeField(fields, "financialSummary", &rec.FinancialSummary)
	decodeField(fields, "incomeTransactions", &rec.IncomeTransactions)
	decodeField(fields, "expenseTransactions", &rec.ExpenseTransactions)
	decodeField(fields, "customTemplates", &rec.CustomTemplates)
	decodeField(fields, "calendarNotes", &rec.CalendarNotes)
	decodeField(fields, "wins", &rec.Wins)
	decodeField(fields, "connectedPlatforms", &rec.ConnectedPlatforms)
	decodeField(fields, "dailyLogs", &rec.DailyLogs)
	decodeField(fields, "onboardingData", &rec.OnboardingData)

	return normalize(rec), legacy, nil
}

func decodeField[T any](fields map[string]json.RawMessage, name string, dst *T) {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("discarding malformed record field", "field", name, "error", err)
		return
	}
	*dst = v
}

// normalize restores invariants a hand-edited or old record may break:
// nil collections, one performance entry per platform and totals that
// match the transaction lists.
func normalize(rec AppRecord) AppRecord {
	if rec.GrowthSeries == nil {
		rec.GrowthSeries = []GrowthPoint{}
	}
	if rec.IncomeTransactions == nil {
		rec.IncomeTransactions = []Transaction{}
	}
	if rec.ExpenseTransactions == nil {
		rec.ExpenseTransactions = []Transaction{}
	}
	if rec.CustomTemplates == nil {
		rec.CustomTemplates = []Template{}
	}
	if rec.Wins == nil {
		rec.Wins = []Win{}
	}
	if rec.CalendarNotes == nil {
		rec.CalendarNotes = map[int]string{}
	}
	if rec.ConnectedPlatforms == nil {
		rec.ConnectedPlatforms = map[string]bool{}
	}
	for name, on := range rec.ConnectedPlatforms {
		if !on {
			delete(rec.ConnectedPlatforms, name)
		}
	}
	if rec.DailyLogs == nil {
		rec.DailyLogs = map[string]DailyLog{}
	}

	seen := make(map[string]bool, len(rec.PlatformPerformance))
	perf := make([]PlatformPerformance, 0, len(rec.PlatformPerformance))
	for _, p := range rec.PlatformPerformance {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		perf = append(perf, p)
	}
	rec.PlatformPerformance = perf

	rec.FinancialSummary = FinancialSummary{
		Income:   sumAmounts(rec.IncomeTransactions),
		Expenses: sumAmounts(rec.ExpenseTransactions),
	}
	return rec
}
