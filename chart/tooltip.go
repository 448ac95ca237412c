package chart

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dayMonthJS formats epoch seconds as dd.mm in the browser, matching DayMonth.
const dayMonthJS = `function (s) { var d = new Date(s * 1000); return ('0' + d.getUTCDate()).slice(-2) + '.' + ('0' + (d.getUTCMonth() + 1)).slice(-2); }`

// DayMonth formats epoch seconds as "dd.mm" in UTC.
func DayMonth(epoch float64) string {
	return time.Unix(int64(epoch), 0).UTC().Format("02.01")
}

// TooltipFormatter synthesizes "<series>: <x>: <value><unit>" tooltips.
type TooltipFormatter struct {
	Unit      string   `json:"unit"`
	Rounding  Rounding `json:"rounding"`
	Precision int32    `json:"precision"`
}

// FormatValue prints v according to the rounding mode.
func (f TooltipFormatter) FormatValue(v float64) string {
	switch f.Rounding {
	case RoundingHalfUp:
		return decimal.NewFromFloat(v).Round(f.Precision).String()
	case RoundingTruncate:
		return decimal.NewFromFloat(v).Truncate(f.Precision).String()
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// Format renders the tooltip text for one point.
func (f TooltipFormatter) Format(seriesName, x string, v float64) string {
	return fmt.Sprintf("%s: %s: %s%s", seriesName, x, f.FormatValue(v), f.Unit)
}

// TooltipTable returns the tooltip text of every point, indexed by series and
// point. Null points get an empty string.
func (c ChartSpec) TooltipTable() [2][]string {
	var table [2][]string
	for s := range c.Series {
		table[s] = make([]string, c.Series[s].Len())
		for i := range table[s] {
			table[s][i], _ = c.TooltipText(s, i)
		}
	}
	return table
}

// TooltipJS returns the ECharts item tooltip formatter. It looks the text up
// in TooltipTable, so the browser shows exactly what Format produces.
func (c ChartSpec) TooltipJS() string {
	table := c.TooltipTable()

	var b strings.Builder
	b.WriteString("function (p) { if (p.componentType !== 'series') { return p.name; } var t = [")
	for s, texts := range table {
		if s > 0 {
			b.WriteString(", ")
		}
		b.WriteString("[")
		for i, text := range texts {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(jsString(text))
		}
		b.WriteString("]")
	}
	b.WriteString("]; var v = (t[p.seriesIndex] || [])[p.dataIndex]; return v === undefined ? '' : decodeURIComponent(v); }")
	return b.String()
}

// jsString quotes s as a single-quoted JS literal holding its URI encoding.
// The formatter travels inside the chart's JSON options, where double quotes
// and backslashes would be escaped, so the literal contains neither.
func jsString(s string) string {
	return "'" + strings.ReplaceAll(url.PathEscape(s), "&", "%26") + "'"
}
