package utils

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/elC0mpa/aws-cost-report/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderCostTable(t *testing.T) {
	r := &model.Report{
		AccountID: "123456789012",
		Windows:   model.NewCostWindows(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)),
		Summary: model.CostSummary{
			Total:    decimal.RequireFromString("1250"),
			Trailing: decimal.RequireFromString("40"),
			Forecast: decimal.RequireFromString("2500"),
			Services: []model.ServiceCost{
				{Name: "EC2", Amount: decimal.RequireFromString("1000"), Unit: "USD"},
				{Name: "S3", Amount: decimal.RequireFromString("250"), Unit: "USD"},
			},
			MaxCost: decimal.RequireFromString("1000"),
			Unit:    "USD",
		},
	}

	out := RenderCostTable(r)

	assert.Contains(t, out, "123456789012")
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "$1,250.00")
	assert.Contains(t, out, "$2,500.00")
	assert.Contains(t, out, "80.0%")
	assert.Contains(t, out, "20.0%")
}

func TestAssignRankedColors(t *testing.T) {
	colors := assignRankedColors(8)

	assert.Len(t, colors, 8)
	assert.Equal(t, ColorRank1, colors[0])
	assert.Equal(t, ColorRank6, colors[5])
	assert.Equal(t, ColorRank6, colors[7])
	assert.Empty(t, assignRankedColors(0))
}

func TestGetBarLabel(t *testing.T) {
	label := getBarLabel(model.ServiceCost{Name: "Amazon Elastic Compute Cloud - Compute", Amount: decimal.RequireFromString("12.5")})

	assert.Equal(t, "Amazon Elasti…: $12.50", label)
}

func TestRenderCostTable_TitleIsLiteral(t *testing.T) {
	r := &model.Report{
		AccountID: "100%d-acct",
		Windows:   model.NewCostWindows(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)),
		Summary:   model.CostSummary{MaxCost: decimal.NewFromInt(1), Unit: "USD"},
	}

	out := RenderCostTable(r)

	assert.Contains(t, out, "100%d-acct")
	assert.NotContains(t, out, "%!")
}

func TestGetBarLabel_MultiByteName(t *testing.T) {
	label := getBarLabel(model.ServiceCost{Name: "Überwachungsdienst Ärger", Amount: decimal.RequireFromString("1")})

	assert.True(t, utf8.ValidString(label))
	assert.Equal(t, "Überwachungsd…: $1.00", label)
}
