package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	New("prod", &buf).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected debug suppressed in prod, got %q", buf.String())
	}

	New("dev", &buf).Debug("shown", "material_id", 7)
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("Expected JSON line, got %q", buf.String())
	}
	if rec["msg"] != "shown" || rec["service"] != "materials-catalog" || rec["material_id"] != float64(7) {
		t.Errorf("Unexpected record: %v", rec)
	}
}
