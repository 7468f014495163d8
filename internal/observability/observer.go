// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides lightweight operation timing for the
// extraction pipeline. At the metrics level observations are collected but
// not printed; at the debug level each completed operation is emitted as a
// JSON line, suitable for piping to jq during troubleshooting.
package observability

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

type Level int

const (
	LevelOff     Level = 0
	LevelMetrics Level = 1
	LevelDebug   Level = 2
)

// Observation records one completed pipeline operation.
type Observation struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	FilePath   string                 `json:"file_path,omitempty"`
	Page       int                    `json:"page,omitempty"`
	DurationMs int64                  `json:"duration_ms"`
	Success    bool                   `json:"success"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// Observer collects operation timings from pipeline components.
type Observer struct {
	level  Level
	writer io.Writer

	mu           sync.Mutex
	observations []Observation
}

// New creates an observer writing debug output to writer.
func New(level Level, writer io.Writer) *Observer {
	return &Observer{level: level, writer: writer}
}

// StartTiming begins timing an operation and returns the completion
// callback. The callback is safe to call with a nil metadata map.
func (o *Observer) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]interface{}) {
	if o == nil || o.level == LevelOff {
		return func(bool, map[string]interface{}) {}
	}
	start := time.Now()
	return func(success bool, metadata map[string]interface{}) {
		o.record(Observation{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// StartPageTiming is StartTiming scoped to one page of a document.
func (o *Observer) StartPageTiming(component, operation string, page int) func(success bool, metadata map[string]interface{}) {
	if o == nil || o.level == LevelOff {
		return func(bool, map[string]interface{}) {}
	}
	start := time.Now()
	return func(success bool, metadata map[string]interface{}) {
		o.record(Observation{
			Component:  component,
			Operation:  operation,
			Page:       page,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

func (o *Observer) record(obs Observation) {
	o.mu.Lock()
	o.observations = append(o.observations, obs)
	o.mu.Unlock()

	if o.level >= LevelDebug && o.writer != nil {
		json.NewEncoder(o.writer).Encode(obs)
	}
}

// Observations returns a copy of everything recorded so far.
func (o *Observer) Observations() []Observation {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Observation, len(o.observations))
	copy(out, o.observations)
	return out
}
