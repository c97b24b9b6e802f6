package entity

import (
	"encoding/json"
	"testing"
)

func TestOptionalTextJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want OptionalText
		out  string
	}{
		{
			name: "字符串输入",
			raw:  `"some text"`,
			want: Some("some text"),
			out:  `"some text"`,
		},
		{
			name: "空字符串仍视为已提供",
			raw:  `""`,
			want: Some(""),
			out:  `""`,
		},
		{
			name: "null 归一化为缺省",
			raw:  `null`,
			want: None(),
			out:  `null`,
		},
		{
			name: "非字符串归一化为缺省",
			raw:  `42`,
			want: None(),
			out:  `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got OptionalText
			if err := json.Unmarshal([]byte(tt.raw), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}

			encoded, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(encoded) != tt.out {
				t.Errorf("expected %s, got %s", tt.out, encoded)
			}
		})
	}
}

func TestOptionalTextValue(t *testing.T) {
	v, err := Some("text").Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "text" {
		t.Errorf("expected %q, got %v", "text", v)
	}

	v, err = None().Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("expected nil, got %v", v)
	}
}

func TestOptionalTextScan(t *testing.T) {
	var got OptionalText

	if err := got.Scan(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Present {
		t.Error("expected absent after scanning nil")
	}

	if err := got.Scan("stored"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Some("stored") {
		t.Errorf("expected present %q, got %+v", "stored", got)
	}

	if err := got.Scan([]byte("bytes")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Some("bytes") {
		t.Errorf("expected present %q, got %+v", "bytes", got)
	}

	if err := got.Scan(42); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestOptionalTextHasText(t *testing.T) {
	if !Some("x").HasText() {
		t.Error("expected HasText for non-empty present value")
	}
	if Some("").HasText() {
		t.Error("expected no text for empty present value")
	}
	if None().HasText() {
		t.Error("expected no text for absent value")
	}
}
