package schedule

import (
	"errors"
	"testing"

	"github.com/kintai-tools/shiftcal/pkg/pdf"
)

func TestReadPeriod(t *testing.T) {
	src := &fakeSource{
		height: 842,
		words: []pdf.Word{
			w("血液浄化センター", 40, 20),
			w("勤務表", 160, 20),
			w("2025年8月", 240, 20),
			w("2024年1月", 240, 700), // body text below the header region
		},
	}

	p, err := ReadPeriod(src, 0.15)
	if err != nil {
		t.Fatalf("ReadPeriod: %v", err)
	}
	if p.Year != 2025 || p.Month != 8 {
		t.Errorf("period = %v, want 2025-08", p)
	}
}

func TestReadPeriodSpacedHeader(t *testing.T) {
	src := &fakeSource{
		height: 842,
		words: []pdf.Word{
			w("2025", 100, 20),
			w("年", 140, 20),
			w("8", 160, 20),
			w("月", 180, 20),
		},
	}

	p, err := ReadPeriod(src, 0.15)
	if err != nil {
		t.Fatalf("ReadPeriod: %v", err)
	}
	if p.Year != 2025 || p.Month != 8 {
		t.Errorf("period = %v, want 2025-08", p)
	}
}

func TestReadPeriodNotFound(t *testing.T) {
	src := &fakeSource{
		height: 842,
		words:  []pdf.Word{w("勤務表", 40, 20)},
	}

	_, err := ReadPeriod(src, 0.15)
	if !errors.Is(err, ErrHeaderNotFound) {
		t.Fatalf("expected ErrHeaderNotFound, got %v", err)
	}
}
