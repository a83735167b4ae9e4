package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromInt(100), INR)
		require.NoError(t, err)
		assert.Equal(t, INR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("rejects empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(100), "")
		assert.Error(t, err)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"integer amount", "100", false},
		{"fractional amount", "99.99", false},
		{"negative amount", "-10.50", false},
		{"invalid string", "abc", true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMoneyFromString(tt.amount, INR)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMoney_Add(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		a := NewMoneyINRFromFloat(25000.00)
		b := NewMoneyINRFromFloat(35000.00)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(60000)))
	})

	t.Run("rejects currency mismatch", func(t *testing.T) {
		a := NewMoneyINRFromFloat(100)
		b, _ := NewMoney(decimal.NewFromInt(100), USD)

		_, err := a.Add(b)
		assert.Error(t, err)
	})

	t.Run("exact sum of many fractional amounts", func(t *testing.T) {
		// 0.01 added 1000 times must be exactly 10.00
		cent, err := NewMoneyFromString("0.01", INR)
		require.NoError(t, err)

		total := ZeroINR()
		for n := 0; n < 1000; n++ {
			total = total.MustAdd(cent)
		}
		assert.True(t, total.Amount().Equal(decimal.NewFromInt(10)))
	})
}

func TestMoney_Subtract(t *testing.T) {
	a := NewMoneyINRFromFloat(100000.00)
	b := NewMoneyINRFromFloat(85000.00)

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromInt(15000)))

	// Subtraction may go negative; that is how overpayment is represented
	neg, err := b.Subtract(a)
	require.NoError(t, err)
	assert.True(t, neg.IsNegative())
}

func TestMoney_Cmp(t *testing.T) {
	small := NewMoneyINRFromFloat(10)
	big := NewMoneyINRFromFloat(20)

	c, err := small.Cmp(big)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = big.Cmp(small)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = small.Cmp(NewMoneyINRFromFloat(10))
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestMoney_Equals(t *testing.T) {
	a, _ := NewMoneyFromString("100.00", INR)
	b, _ := NewMoneyFromString("100", INR)
	c, _ := NewMoneyFromString("100", USD)

	assert.True(t, a.Equals(b)) // trailing zeros do not matter
	assert.False(t, a.Equals(c))
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroINR().IsZero())
	assert.True(t, NewMoneyINRFromFloat(1).IsPositive())
	assert.True(t, NewMoneyINRFromFloat(-1).IsNegative())
	assert.True(t, NewMoneyINRFromFloat(-1).Abs().IsPositive())
	assert.True(t, NewMoneyINRFromFloat(1).Negate().IsNegative())
}

func TestMoney_String(t *testing.T) {
	m := NewMoneyINRFromFloat(1234.5)
	assert.Equal(t, "1234.50 INR", m.String())
	assert.Equal(t, "1234.50", m.StringFixed(2))
}

func TestMoney_JSON(t *testing.T) {
	m, err := NewMoneyFromString("99.99", INR)
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"99.99","currency":"INR"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoney_Scan(t *testing.T) {
	t.Run("scans string value", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("15000.00"))
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(15000)))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("scans nil as zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(42))
	})
}
