package domain

// TimeFrame is a candle interval for chart data.
type TimeFrame string

const (
	TimeFrame1m  TimeFrame = "1m"
	TimeFrame5m  TimeFrame = "5m"
	TimeFrame15m TimeFrame = "15m"
	TimeFrame1h  TimeFrame = "1h"
	TimeFrame4h  TimeFrame = "4h"
	TimeFrame1d  TimeFrame = "1d"
	TimeFrame1w  TimeFrame = "1w"
)

// TimeFrameSeconds maps each supported interval to its length in seconds.
var TimeFrameSeconds = map[TimeFrame]int64{
	TimeFrame1m:  60,
	TimeFrame5m:  300,
	TimeFrame15m: 900,
	TimeFrame1h:  3600,
	TimeFrame4h:  14400,
	TimeFrame1d:  86400,
	TimeFrame1w:  604800,
}

// ValidTimeFrames lists the supported intervals in ascending order.
func ValidTimeFrames() []TimeFrame {
	return []TimeFrame{TimeFrame1m, TimeFrame5m, TimeFrame15m, TimeFrame1h, TimeFrame4h, TimeFrame1d, TimeFrame1w}
}

// Valid reports whether the time frame is supported.
func (tf TimeFrame) Valid() bool {
	_, ok := TimeFrameSeconds[tf]
	return ok
}

// OHLCV is one candle of simulated chart data.
type OHLCV struct {
	Time   int64   `json:"time"` // unix seconds
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}
