package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imryche/blockkit-sub000/pkg/validator"
)

func TestIsoDate(t *testing.T) {
	t.Parallel()

	rule := validator.IsoDate()

	t.Run("accepts ISO string and time values", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, rule.Validate("initial_date", "1990-04-28"))
		assert.NoError(t, rule.Validate("initial_date", time.Date(1990, 4, 28, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		t.Parallel()
		err := rule.Validate("initial_date", "28/04/1990")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Expected ISO date format 'YYYY-MM-DD', got '28/04/1990'")
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, rule.Validate("initial_date", "2024-02-30"))
	})

	t.Run("rejects numbers", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, rule.Validate("initial_date", 19900428))
	})
}

func TestUnixTimestamp(t *testing.T) {
	t.Parallel()

	rule := validator.UnixTimestamp()

	t.Run("accepts integral epochs and time values", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, rule.Validate("initial_date_time", 1628633820))
		assert.NoError(t, rule.Validate("initial_date_time", int64(0)))
		assert.NoError(t, rule.Validate("initial_date_time", time.Unix(1628633820, 0)))
	})

	t.Run("rejects strings", func(t *testing.T) {
		t.Parallel()
		err := rule.Validate("initial_date_time", "1628633820")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Expected Unix timestamp, got '1628633820'")
	})

	t.Run("rejects out of range epochs", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, rule.Validate("initial_date_time", int64(1)<<62))
	})

	t.Run("rejects fractional epochs", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, rule.Validate("initial_date_time", 1.5))
	})
}

func TestTimeOfDay(t *testing.T) {
	t.Parallel()

	rule := validator.TimeOfDay()

	t.Run("accepts HH:MM", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, rule.Validate("initial_time", "13:00"))
		assert.NoError(t, rule.Validate("initial_time", time.Date(0, 1, 1, 14, 5, 0, 0, time.UTC)))
	})

	t.Run("rejects other formats", func(t *testing.T) {
		t.Parallel()
		err := rule.Validate("initial_time", "1pm")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Expected time format 'HH:MM', got '1pm'")
		assert.Error(t, rule.Validate("initial_time", "25:00"))
	})
}
