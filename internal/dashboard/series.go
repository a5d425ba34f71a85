package dashboard

import (
	"bufio"
	"encoding/json"
	"io"
	"slices"
	"time"
)

// rawPoint maps one JSONL series line.
type rawPoint struct {
	TS    string   `json:"ts"`
	Value *float64 `json:"value"`
}

// Point is one timestamped series value.
type Point struct {
	TS    time.Time
	Value float64
}

// SeriesResult holds parsed points and error stats.
type SeriesResult struct {
	Points     []Point
	SkipCount  int
	ErrorCount int
}

// ReadSeries reads JSONL points from r, streaming line by line. Lines
// without a value are skipped; malformed lines and timestamps are
// counted as errors. Points are returned in timestamp order.
func ReadSeries(r io.Reader) SeriesResult {
	var result SeriesResult
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec rawPoint
		if err := json.Unmarshal(line, &rec); err != nil {
			result.ErrorCount++
			continue
		}
		if rec.Value == nil {
			result.SkipCount++
			continue
		}

		ts, err := time.Parse(time.RFC3339Nano, rec.TS)
		if err != nil {
			ts, err = time.Parse(time.DateOnly, rec.TS)
			if err != nil {
				result.ErrorCount++
				continue
			}
		}

		result.Points = append(result.Points, Point{TS: ts.UTC(), Value: *rec.Value})
	}

	if err := scanner.Err(); err != nil {
		result.ErrorCount++
	}

	slices.SortStableFunc(result.Points, func(a, b Point) int {
		return a.TS.Compare(b.TS)
	})
	return result
}

// apply replaces the chart's labels and values with the series.
func (c *Chart) apply(res SeriesResult) {
	c.Labels = make([]string, len(res.Points))
	c.Values = make([]float64, len(res.Points))
	layout := "01-02 15:04"
	if dailyOnly(res.Points) {
		layout = time.DateOnly
	}
	for i, p := range res.Points {
		c.Labels[i] = p.TS.Format(layout)
		c.Values[i] = p.Value
	}
	c.Skipped = res.SkipCount
	c.Errors = res.ErrorCount
}

// dailyOnly reports whether every point falls on midnight, so labels can
// drop the clock.
func dailyOnly(points []Point) bool {
	if len(points) == 0 {
		return false
	}
	for _, p := range points {
		if p.TS.Hour() != 0 || p.TS.Minute() != 0 || p.TS.Second() != 0 {
			return false
		}
	}
	return true
}
