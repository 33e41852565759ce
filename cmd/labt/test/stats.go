package test

import (
	"fmt"
	"strconv"
	"time"
)

// Stats summarizes one function's invocations. Latencies are in
// milliseconds and include failed invocations.
type Stats struct {
	FunctionName string  `json:"functionName"`
	Invocations  int     `json:"invocations"`
	Errors       int     `json:"errors"`
	LastError    string  `json:"lastError,omitempty"`
	MinLatencyMs float64 `json:"minLatencyMs"`
	AvgLatencyMs float64 `json:"avgLatencyMs"`
	MaxLatencyMs float64 `json:"maxLatencyMs"`

	total time.Duration
}

func (s *Stats) Map() map[string]string {
	return map[string]string{
		"functionName": s.FunctionName,
		"invocations":  strconv.Itoa(s.Invocations),
		"errors":       strconv.Itoa(s.Errors),
		"minLatencyMs": fmt.Sprintf("%.1f", s.MinLatencyMs),
		"avgLatencyMs": fmt.Sprintf("%.1f", s.AvgLatencyMs),
		"maxLatencyMs": fmt.Sprintf("%.1f", s.MaxLatencyMs),
	}
}

func (s *Stats) add(latency time.Duration, err error) {
	ms := float64(latency) / float64(time.Millisecond)
	if s.Invocations == 0 || ms < s.MinLatencyMs {
		s.MinLatencyMs = ms
	}
	if ms > s.MaxLatencyMs {
		s.MaxLatencyMs = ms
	}
	s.Invocations++
	s.total += latency
	s.AvgLatencyMs = float64(s.total) / float64(s.Invocations) / float64(time.Millisecond)
	if err != nil {
		s.Errors++
		s.LastError = err.Error()
	}
}
