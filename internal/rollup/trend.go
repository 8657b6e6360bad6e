package rollup

// Direction classifies how a metric is moving.
type Direction string

const (
	TrendUp     Direction = "up"
	TrendDown   Direction = "down"
	TrendStable Direction = "stable"
)

// trendWindow is the number of points averaged at each end of a series.
const trendWindow = 3

// sentimentTrendThreshold is the absolute change in average sentiment
// (-1..1 scale) below which the trend reads as stable.
const sentimentTrendThreshold = 0.1

// relativeTrendThresholdPct is the week-over-week relative change, in
// percent, below which a wellness metric reads as stable.
const relativeTrendThresholdPct = 10.0

// SeriesTrend compares the mean of the last three points against the
// mean of the first three points of an oldest-to-newest series. With
// fewer than three points the two windows overlap; that is accepted.
// Fewer than two points gives no directional signal.
func SeriesTrend(values []float64) Direction {
	if len(values) < 2 {
		return TrendStable
	}

	head := values
	if len(head) > trendWindow {
		head = values[:trendWindow]
	}
	tail := values
	if len(tail) > trendWindow {
		tail = values[len(values)-trendWindow:]
	}

	recent := mean(tail)
	earlier := mean(head)

	switch {
	case recent > earlier+sentimentTrendThreshold:
		return TrendUp
	case recent < earlier-sentimentTrendThreshold:
		return TrendDown
	default:
		return TrendStable
	}
}

// RelativeTrend classifies a week-over-week change using a ±10% relative
// threshold. A zero previous value can't produce a ratio, so it reads as
// up when anything was logged this week and stable otherwise.
func RelativeTrend(current, previous float64) Direction {
	if previous == 0 {
		if current > 0 {
			return TrendUp
		}
		return TrendStable
	}

	changePct := (current - previous) / previous * 100
	switch {
	case changePct > relativeTrendThresholdPct:
		return TrendUp
	case changePct < -relativeTrendThresholdPct:
		return TrendDown
	default:
		return TrendStable
	}
}
