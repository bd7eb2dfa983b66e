// seehuhn.de/go/offset - offset curves for polylines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package offset

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestDefaultLoggerSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestLogFallbacks(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	// a reversal and a step
	pts := []vec.Vec2{v2(0, 0), v2(10, 0), v2(0, 0), v2(-10, 0)}
	if _, err := Offset2D(pts, PerEdge(1, 1, 2), false, nil); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"U-turn", "parallel edges", "vertex=1", "vertex=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}

	SetLogger(nil)
	buf.Reset()
	if _, err := Offset2D(pts, PerEdge(1, 1, 2), false, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() > 0 {
		t.Errorf("unexpected output after reset: %q", buf.String())
	}
}
