// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDatasetLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := NewDatasetLoggerWithLogger(NewTestLogger(&buf))

	d.LoadStarted("reviews.csv", "places.csv", "users.csv")
	d.LoadFinished(10000, 300, 437, 250*time.Millisecond)
	d.LoadFailed(errors.New("missing column"), time.Second)
	d.RowsSkipped(0, "ignored")
	d.RowsSkipped(4, "unknown place")

	output := buf.String()
	for _, want := range []string{
		`"component":"dataset"`,
		`"reviews_path":"reviews.csv"`,
		`"rows":10000`,
		`"error":"missing column"`,
		`"reason":"unknown place"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s:\n%s", want, output)
		}
	}
	if strings.Contains(output, "ignored") {
		t.Error("RowsSkipped(0) wrote an event")
	}
	if lines := strings.Count(output, "\n"); lines != 5 {
		t.Errorf("event count = %d, want 5", lines)
	}
}
