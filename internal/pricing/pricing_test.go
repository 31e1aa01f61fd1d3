package pricing

import (
	"testing"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"

	"github.com/stretchr/testify/require"
)

func testEngine() *Engine {
	return New(0.12, 0.13, "CAD")
}

var base = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func TestCalculate_Monthly_IgnoresIntervalLength(t *testing.T) {
	e := testEngine()

	short, err := e.Calculate(100, models.PricingMonthly, base, base.Add(24*time.Hour))
	require.NoError(t, err)

	long, err := e.Calculate(100, models.PricingMonthly, base, base.Add(40*24*time.Hour))
	require.NoError(t, err)

	require.Equal(t, int64(10000), short.SubtotalCents)
	require.Equal(t, short, long)
}

func TestCalculate_Monthly_CascadingRounding(t *testing.T) {
	e := testEngine()

	got, err := e.Calculate(100, models.PricingMonthly, base, base.Add(30*24*time.Hour))
	require.NoError(t, err)

	require.Equal(t, int64(10000), got.SubtotalCents)
	require.Equal(t, int64(1200), got.ServiceFeeCents)  // round(10000 * 0.12)
	require.Equal(t, int64(1456), got.TaxCents)         // round(11200 * 0.13)
	require.Equal(t, int64(12656), got.TotalCents)
	require.Equal(t, "CAD", got.Currency)
}

func TestCalculate_Daily_PartialDayRoundsUp(t *testing.T) {
	e := testEngine()

	// 25 часов — два полных дня по ставке 20/день.
	got, err := e.Calculate(20, models.PricingDaily, base, base.Add(25*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(4000), got.SubtotalCents)
}

func TestCalculate_Daily_ExactDays(t *testing.T) {
	e := testEngine()

	got, err := e.Calculate(20, models.PricingDaily, base, base.Add(48*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(4000), got.SubtotalCents)
}

func TestCalculate_Hourly_FractionalHours(t *testing.T) {
	e := testEngine()

	got, err := e.Calculate(3.50, models.PricingHourly, base, base.Add(2*time.Hour+30*time.Minute))
	require.NoError(t, err)
	require.Equal(t, int64(875), got.SubtotalCents) // round(3.50 * 2.5 * 100)
}

func TestCalculate_TotalIsSumOfRoundedStages(t *testing.T) {
	e := testEngine()

	got, err := e.Calculate(7.77, models.PricingHourly, base, base.Add(3*time.Hour+17*time.Minute))
	require.NoError(t, err)
	require.Equal(t, got.SubtotalCents+got.ServiceFeeCents+got.TaxCents, got.TotalCents)
}

func TestCalculate_InvalidInterval_AllModels(t *testing.T) {
	e := testEngine()

	for _, model := range []models.PricingModel{models.PricingHourly, models.PricingDaily, models.PricingMonthly} {
		t.Run(string(model), func(t *testing.T) {
			_, err := e.Calculate(10, model, base, base)
			require.ErrorIs(t, err, ErrInvalidInterval)

			_, err = e.Calculate(10, model, base, base.Add(-time.Minute))
			require.ErrorIs(t, err, ErrInvalidInterval)
		})
	}
}

func TestCalculate_NegativeRate(t *testing.T) {
	e := testEngine()

	_, err := e.Calculate(-0.01, models.PricingHourly, base, base.Add(time.Hour))
	require.ErrorIs(t, err, ErrInvalidRate)
}

func TestCalculate_ZeroRate_ZeroTotal(t *testing.T) {
	e := testEngine()

	got, err := e.Calculate(0, models.PricingDaily, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(0), got.TotalCents)
}

func TestCalculate_UnknownModel_Panics(t *testing.T) {
	e := testEngine()

	require.Panics(t, func() {
		_, _ = e.Calculate(10, models.PricingModel("weekly"), base, base.Add(time.Hour))
	})
}

func TestCalculate_Deterministic(t *testing.T) {
	e := testEngine()

	a, err := e.Calculate(12.34, models.PricingHourly, base, base.Add(90*time.Minute))
	require.NoError(t, err)
	b, err := e.Calculate(12.34, models.PricingHourly, base, base.Add(90*time.Minute))
	require.NoError(t, err)
	require.Equal(t, a, b)
}
