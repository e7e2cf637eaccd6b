package language

import "testing"

func TestTable_Remap(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		code  string
		want  string
	}{
		{name: "gateway simplified chinese", table: Gateway, code: "zh-CN", want: "zh"},
		{name: "gateway traditional chinese", table: Gateway, code: "zh-TW", want: "zh-TW"},
		{name: "mymemory english", table: MyMemory, code: "en", want: "en-GB"},
		{name: "mymemory japanese", table: MyMemory, code: "ja", want: "ja-JP"},
		{name: "google identity", table: Google, code: "ko", want: "ko"},
		{name: "deepl upper case", table: DeepL, code: "de", want: "DE"},
		{name: "unknown code falls back", table: MyMemory, code: "uk", want: "uk"},
		{name: "auto passes through", table: Gateway, code: Auto, want: Auto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.Remap(tt.code); got != tt.want {
				t.Errorf("Remap(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestTablesCoverSupportedLanguages(t *testing.T) {
	for _, o := range Supported {
		for name, table := range map[string]Table{"gateway": Gateway, "mymemory": MyMemory, "google": Google} {
			if _, ok := table[o.Code]; !ok {
				t.Errorf("%s table has no entry for %s", name, o.Code)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("auto", true); err != nil {
		t.Errorf("unexpected error for auto source: %v", err)
	}
	if err := Validate("auto", false); err == nil {
		t.Error("expected error for auto target")
	}
	if err := Validate("zh-TW", false); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Validate("", false); err == nil {
		t.Error("expected error for empty code")
	}
	if err := Validate("not a code", false); err == nil {
		t.Error("expected error for malformed code")
	}
}

func TestParseChoice(t *testing.T) {
	if got := ParseChoice("zh-TW - 繁體中文 (Traditional Chinese)"); got != "zh-TW" {
		t.Errorf("got %q, want zh-TW", got)
	}
	if got := ParseChoice(" en "); got != "en" {
		t.Errorf("got %q, want en", got)
	}
}

func TestLabel(t *testing.T) {
	if got := Label("ja"); got != "日本語 (Japanese)" {
		t.Errorf("unexpected label %q", got)
	}
	if got := Label("xx"); got != "xx" {
		t.Errorf("unexpected fallback label %q", got)
	}
}
