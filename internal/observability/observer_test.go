// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestObserver_CollectsAtMetricsLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := New(LevelMetrics, &buf)

	done := obs.StartTiming("pipeline", "open", "doc.pdf")
	done(true, nil)

	recorded := obs.Observations()
	if len(recorded) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(recorded))
	}
	if recorded[0].Component != "pipeline" || recorded[0].Operation != "open" {
		t.Errorf("unexpected observation: %+v", recorded[0])
	}
	if !recorded[0].Success {
		t.Error("expected success=true")
	}
	// Metrics level collects silently.
	if buf.Len() != 0 {
		t.Errorf("metrics level should not write output, got %q", buf.String())
	}
}

func TestObserver_DebugEmitsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	obs := New(LevelDebug, &buf)

	done := obs.StartPageTiming("pipeline", "process_page", 3)
	done(true, map[string]interface{}{"images": 2})

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("debug level should emit a JSON line")
	}

	var decoded Observation
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Page != 3 {
		t.Errorf("Page = %d, want 3", decoded.Page)
	}
	if decoded.Operation != "process_page" {
		t.Errorf("Operation = %q", decoded.Operation)
	}
}

func TestObserver_OffLevelIsNoop(t *testing.T) {
	var buf bytes.Buffer
	obs := New(LevelOff, &buf)

	done := obs.StartTiming("pipeline", "open", "doc.pdf")
	done(false, nil)

	if len(obs.Observations()) != 0 {
		t.Error("off level should record nothing")
	}
	if buf.Len() != 0 {
		t.Error("off level should write nothing")
	}
}

func TestObserver_NilReceiverIsSafe(t *testing.T) {
	var obs *Observer
	done := obs.StartPageTiming("pipeline", "process_page", 1)
	done(true, nil)

	if got := obs.Observations(); got != nil {
		t.Errorf("nil observer Observations = %v, want nil", got)
	}
}
