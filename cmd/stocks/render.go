package main

import (
	"fmt"
	"strings"
	"time"

	"stock-dashboard/src/format"
	"stock-dashboard/src/models"
)

// cell escapes table separators in upstream text
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

func statusLine(result models.MInstrumentsResult) string {
	if result.FetchedAt.IsZero() {
		return fmt.Sprintf("_Status: %s_\n\n", result.Status)
	}
	return fmt.Sprintf("_Status: %s, fetched %s_\n\n", result.Status, result.FetchedAt.Format(time.RFC3339))
}

// -----------------------------------------------------------------------------

func listMarkdown(list []models.MInstrument, result models.MInstrumentsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Instruments (%d of %d)\n\n", len(list), len(result.Instruments))
	b.WriteString(statusLine(result))

	if len(list) == 0 {
		b.WriteString("No instruments match.\n")
		return b.String()
	}

	b.WriteString("| Code | Name | Sector | Last | 1D | YTD | Market Cap |\n")
	b.WriteString("|---|---|---|---:|---:|---:|---:|\n")
	for _, in := range list {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			cell(in.Code), cell(in.Name), cell(in.SectorName),
			format.Currency(in.Last), format.SignedPercent(in.OneDay),
			format.SignedPercent(in.Ytd), format.MarketCap(in.Capitalization))
	}
	return b.String()
}

func detailMarkdown(d models.MInstrumentDetail) string {
	var b strings.Builder
	in := d.Instrument
	fmt.Fprintf(&b, "# %s: %s\n\n", in.Code, cell(in.Name))
	fmt.Fprintf(&b, "%s / %s, %s\n\n", cell(in.SectorName), cell(in.SubSectorName), d.Fundamentals.CapTier)

	b.WriteString("## Price\n\n")
	b.WriteString("| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Last | %s |\n", d.Display.Last)
	fmt.Fprintf(&b, "| Previous close | %s |\n", d.Display.PrevClose)
	fmt.Fprintf(&b, "| Change | %s (%s) |\n", d.Display.Change, d.Display.ChangePercent)
	fmt.Fprintf(&b, "| High / Low | %s / %s |\n", d.Display.High, d.Display.Low)
	fmt.Fprintf(&b, "| Volume | %s |\n", d.Display.Volume)
	fmt.Fprintf(&b, "| Value | %s |\n", d.Display.Value)
	fmt.Fprintf(&b, "| Market cap | %s |\n", d.Display.MarketCap)
	fmt.Fprintf(&b, "| Sector z-score | %s |\n\n", format.Number(d.SectorZScore))

	b.WriteString("## Fundamentals\n\n")
	b.WriteString("| Ratio | Value | Verdict | Comment |\n|---|---:|---|---|\n")
	rows := []struct {
		name string
		r    models.MRating
	}{
		{"PER", d.Fundamentals.PER},
		{"PBV", d.Fundamentals.PBV},
		{"ROE", d.Fundamentals.ROE},
		{"Beta", d.Fundamentals.Beta},
		{"YTD", d.Fundamentals.YTD},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", row.name, row.r.Display, row.r.Label, row.r.Comment)
	}
	return b.String()
}

func historyMarkdown(h models.MHistory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n## History (%d days, simulated)\n\n", len(h.Candles))
	fmt.Fprintf(&b, "Period change %s, daily volatility %s\n\n", format.SignedPercent(h.Change), format.Percent(h.Volatility))
	b.WriteString("| Date | Open | High | Low | Close |\n|---|---:|---:|---:|---:|\n")
	for _, c := range h.Candles {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", c.Date,
			format.Number(c.Open), format.Number(c.High), format.Number(c.Low), format.Number(c.Close))
	}
	return b.String()
}

func sectorsMarkdown(sectors []models.MSectorSummary, market models.MMarketStatus) string {
	var b strings.Builder
	b.WriteString("# Sectors\n\n")
	state := "closed"
	if market.Open {
		state = "open"
	}
	fmt.Fprintf(&b, "_Market %s, %s_\n\n", state, market.LocalTime)

	b.WriteString("| Sector | Count | Avg 1D | Avg YTD | Market Cap |\n|---|---:|---:|---:|---:|\n")
	for _, s := range sectors {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n", cell(s.Sector), s.Count,
			format.SignedPercent(s.AvgOneDay), format.SignedPercent(s.AvgYtd), format.MarketCap(s.Capitalization))
	}
	return b.String()
}

func moversMarkdown(m models.MMovers) string {
	var b strings.Builder
	section := func(title string, list []models.MInstrument) {
		fmt.Fprintf(&b, "## %s\n\n", title)
		if len(list) == 0 {
			b.WriteString("None.\n\n")
			return
		}
		b.WriteString("| Code | Last | 1D |\n|---|---:|---:|\n")
		for _, in := range list {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", in.Code, format.Currency(in.Last), format.SignedPercent(in.OneDay))
		}
		b.WriteString("\n")
	}

	b.WriteString("# Top movers\n\n")
	section("Gainers", m.Gainers)
	section("Losers", m.Losers)
	return b.String()
}
