package models

import (
	"testing"
)

func TestStringListValue(t *testing.T) {
	list := StringList{"finance", "investing"}
	value, err := list.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != `["finance","investing"]` {
		t.Errorf("Expected JSON array, got %v", value)
	}
}

func TestStringListValueNil(t *testing.T) {
	var list StringList
	value, err := list.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "[]" {
		t.Errorf("Expected empty array for nil list, got %v", value)
	}
}

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    int
		wantErr bool
	}{
		{"from string", `["a","b","c"]`, 3, false},
		{"from bytes", []byte(`["a"]`), 1, false},
		{"null column", nil, 0, false},
		{"empty string", "", 0, false},
		{"unsupported type", 42, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list StringList
			err := list.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Scan failed: %v", err)
			}
			if len(list) != tt.want {
				t.Errorf("Expected %d elements, got %d", tt.want, len(list))
			}
		})
	}
}

func TestSourceListRoundTrip(t *testing.T) {
	list := SourceList{
		{Title: "Study", URL: "https://example.edu/study", Credibility: 0.95},
	}
	value, err := list.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var scanned SourceList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(scanned) != 1 {
		t.Fatalf("Expected 1 source, got %d", len(scanned))
	}
	if scanned[0].URL != "https://example.edu/study" {
		t.Errorf("Unexpected URL: %s", scanned[0].URL)
	}
	if scanned[0].Credibility != 0.95 {
		t.Errorf("Unexpected credibility: %f", scanned[0].Credibility)
	}
}
