// Package examples is the built-in catalogue of terms used to demonstrate
// how engines disagree.
package examples

// Example is one term with the language pair to try it in.
type Example struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Category groups examples by subject.
type Category struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Icon     string    `json:"icon"`
	Examples []Example `json:"examples"`
}

func zhToEn(text string) Example { return Example{Text: text, Source: "auto", Target: "en"} }
func enToZh(text string) Example { return Example{Text: text, Source: "en", Target: "zh-TW"} }

// Catalog lists every category in display order.
var Catalog = []Category{
	{ID: "medical", Title: "Medical & Health 醫療健康", Icon: "🏥", Examples: []Example{
		zhToEn("衞生署衞生防護中心"), zhToEn("基孔肯雅熱"), enToZh("polymerase chain reaction"),
	}},
	{ID: "legal", Title: "Legal & Government 法律政府", Icon: "⚖️", Examples: []Example{
		zhToEn("立法會"), zhToEn("司法覆核"), enToZh("habeas corpus"),
	}},
	{ID: "finance", Title: "Finance & Business 財經商業", Icon: "💰", Examples: []Example{
		zhToEn("恒生指數"), zhToEn("量化寬鬆"), enToZh("blockchain"),
	}},
	{ID: "technology", Title: "Technology 科技", Icon: "💻", Examples: []Example{
		zhToEn("人工智能"), zhToEn("機器學習"), enToZh("natural language processing"),
	}},
	{ID: "environment", Title: "Environment 環境", Icon: "🌍", Examples: []Example{
		zhToEn("碳中和"), zhToEn("可再生能源"), enToZh("carbon footprint"),
	}},
	{ID: "education", Title: "Education 教育", Icon: "📚", Examples: []Example{
		zhToEn("通識教育"), zhToEn("持續進修"), enToZh("blended learning"),
	}},
}

// Find returns the category with id.
func Find(id string) (Category, bool) {
	for _, c := range Catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
