package sources_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/sources"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVSource_ParsesRecords(t *testing.T) {
	src := sources.NewCSVSource("2006-01-02")
	input := strings.Join([]string{
		"2026-03-05,-12.50,ALBERT HEIJN 1423",
		"2026-03-06,2500.00,Salary March",
	}, "\n")

	records, err := src.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("-12.50")))
	assert.Equal(t, "ALBERT HEIJN 1423", records[0].Description)
	assert.True(t, records[1].Amount.IsPositive())
}

func TestCSVSource_SkipsHeaderRow(t *testing.T) {
	src := sources.NewCSVSource("2006-01-02")
	input := "date,amount,description\n2026-03-05,-12.50,groceries\n"

	records, err := src.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "groceries", records[0].Description)
}

func TestCSVSource_TypoDateOnFirstDataRowIsNotAHeader(t *testing.T) {
	src := sources.NewCSVSource("2006-01-02")

	// Headerless file whose first row has a broken date but a real amount:
	// the batch must fail instead of silently dropping the row.
	input := "2026-13-40,-12.50,groceries\n2026-03-06,-3.20,coffee\n"
	_, err := src.Parse(context.Background(), strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestCSVSource_CustomDateLayout(t *testing.T) {
	src := sources.NewCSVSource("02/01/2006")
	input := "05/03/2026,-12.50,groceries\n"

	records, err := src.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), records[0].Date)
}

func TestCSVSource_BadLineFailsWholeBatch(t *testing.T) {
	src := sources.NewCSVSource("2006-01-02")

	for name, input := range map[string]string{
		"bad date":          "2026-03-05,-12.50,ok\nnot-a-date,-1,broken\n",
		"bad amount":        "2026-03-05,abc,broken\n",
		"empty description": "2026-03-05,-12.50,   \n",
		"wrong field count": "2026-03-05,-12.50\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := src.Parse(context.Background(), strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestCSVSource_CancelledContext(t *testing.T) {
	src := sources.NewCSVSource("2006-01-02")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Parse(ctx, strings.NewReader("2026-03-05,-12.50,x\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistry_LookupAndNames(t *testing.T) {
	reg := sources.NewRegistry(sources.NewCSVSource("2006-01-02"))

	src, err := reg.Lookup("csv")
	require.NoError(t, err)
	assert.Equal(t, "csv", src.Name())

	_, err = reg.Lookup("ofx")
	assert.Error(t, err)

	assert.Equal(t, []string{"csv"}, reg.Names())
}
