package examples

import (
	"testing"

	"github.com/valpere/mtcompare/internal/language"
)

func TestCatalog_LanguagesAreValid(t *testing.T) {
	for _, c := range Catalog {
		if len(c.Examples) == 0 {
			t.Errorf("%s: no examples", c.ID)
		}
		for _, e := range c.Examples {
			if err := language.Validate(e.Source, true); err != nil {
				t.Errorf("%s %q: bad source: %v", c.ID, e.Text, err)
			}
			if err := language.Validate(e.Target, false); err != nil {
				t.Errorf("%s %q: bad target: %v", c.ID, e.Text, err)
			}
		}
	}
}

func TestFind(t *testing.T) {
	c, ok := Find("finance")
	if !ok || c.Examples[2].Text != "blockchain" {
		t.Errorf("unexpected category %+v", c)
	}
	if _, ok := Find("sports"); ok {
		t.Error("expected unknown category to be missing")
	}
}
