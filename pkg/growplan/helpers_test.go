package growplan

import (
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func timing(soakDays, germDays, lightDays int, yieldPerTray string) CropTiming {
	return CropTiming{
		Soak:            SoakFor(soakDays),
		GerminationDays: germDays,
		LightDays:       lightDays,
		AvgYieldPerTray: dec(yieldPerTray),
	}
}
