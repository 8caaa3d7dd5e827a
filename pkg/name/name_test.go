package name

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		surname string
		given   string
		ok      bool
	}{
		{"大江　直義", "大江", "直義", true},
		{"大江 直義", "大江", "直義", true},
		{"佐藤 ゆかりー", "佐藤", "ゆかりー", true},
		{"名前", "", "", false},          // no separator
		{"大江　直義 extra", "", "", false}, // must consume the whole string
		{"Smith John", "", "", false},  // not CJK
		{"", "", "", false},
	}

	for _, tt := range tests {
		p, ok := Parse(tt.in)
		if ok != tt.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if p.Surname != tt.surname || p.Given != tt.given {
			t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)", tt.in, p.Surname, p.Given, tt.surname, tt.given)
		}
		if p.Full != tt.in {
			t.Errorf("Parse(%q) Full = %q, want original string", tt.in, p.Full)
		}
	}
}

func TestLiteral(t *testing.T) {
	p := Literal("名前")
	if p.IsName() {
		t.Error("literal keyword must not report as a decomposed name")
	}
	if p.Full != "名前" {
		t.Errorf("Full = %q, want 名前", p.Full)
	}
}

func TestExtractCandidates(t *testing.T) {
	text := "勤務表 2025年 ☆ 大江　直義 ☆ 山田 花子 ☆ 大江 直義"

	got := ExtractCandidates(text)

	// Sorted, deduplicated (half-width separator normalized to full-width),
	// role prefixes excluded.
	want := []PersonName{
		{Full: "大江　直義", Surname: "大江", Given: "直義"},
		{Full: "山田　花子", Surname: "山田", Given: "花子"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractCandidatesExcludesTitles(t *testing.T) {
	for _, text := range []string{"主任 補佐", "副島 太郎", "代2 番手", "振1 替え"} {
		if got := ExtractCandidates(text); len(got) != 0 {
			t.Errorf("ExtractCandidates(%q) = %v, want none", text, got)
		}
	}
}
