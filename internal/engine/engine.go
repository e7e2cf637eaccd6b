// Package engine describes the machine-translation engines a comparison can
// use and binds each one to the backend that serves it.
package engine

import (
	"errors"

	"github.com/valpere/mtcompare/internal/language"
	"github.com/valpere/mtcompare/internal/translator"
)

// ErrUnknownEngine is returned when an id is not in the registry.
var ErrUnknownEngine = errors.New("unknown engine")

// Family selects how an engine is called.
type Family int

const (
	// FamilyDirect engines have a dedicated backend client.
	FamilyDirect Family = iota + 1
	// FamilyGateway engines share one multi-vendor gateway, told apart by Vendor.
	FamilyGateway
	// FamilyLLM engines prompt a language model and clean its answer.
	FamilyLLM
)

func (f Family) String() string {
	switch f {
	case FamilyDirect:
		return "direct"
	case FamilyGateway:
		return "gateway"
	case FamilyLLM:
		return "llm"
	}
	return "unknown"
}

func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Descriptor is the static description of one engine.
type Descriptor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameZh   string `json:"name_zh"`
	Family   Family `json:"family"`
	Priority int    `json:"priority"`
	// Vendor is passed to the backend as translator.Call.Vendor.
	Vendor string `json:"-"`
	// NativeAuto engines detect the source language themselves.
	NativeAuto bool `json:"-"`
	// Dialect remaps internal language codes; nil passes them through.
	Dialect language.Table `json:"-"`
	// OffByDefault engines start unselected in the web form.
	OffByDefault bool `json:"off_by_default,omitempty"`
}

// Engine is a descriptor bound to the backend that serves it.
type Engine struct {
	Descriptor
	Backend translator.Backend
}

// Catalog lists every engine the tool knows, in priority order.
var Catalog = []Descriptor{
	{ID: "google", Name: "Google Translate", NameZh: "谷歌翻譯", Family: FamilyDirect, Priority: 1, NativeAuto: true, Dialect: language.Google},
	{ID: "bing", Name: "Microsoft Bing", NameZh: "微軟必應翻譯", Family: FamilyGateway, Priority: 2, Vendor: "bing", NativeAuto: true, Dialect: language.Gateway},
	{ID: "alibaba", Name: "Alibaba Translate", NameZh: "阿里翻譯", Family: FamilyGateway, Priority: 3, Vendor: "alibaba", NativeAuto: true, Dialect: language.Gateway},
	{ID: "sogou", Name: "Sogou Translate", NameZh: "搜狗翻譯", Family: FamilyGateway, Priority: 4, Vendor: "sogou", NativeAuto: true, Dialect: language.Gateway},
	{ID: "youdao", Name: "Youdao Translate", NameZh: "有道翻譯", Family: FamilyGateway, Priority: 5, Vendor: "youdao", NativeAuto: true, Dialect: language.Gateway},
	{ID: "tencent", Name: "Tencent Translate", NameZh: "騰訊翻譯", Family: FamilyGateway, Priority: 6, Vendor: "qqTranSmart", NativeAuto: true, Dialect: language.Gateway},
	{ID: "lingvanex", Name: "Lingvanex", NameZh: "Lingvanex 翻譯", Family: FamilyGateway, Priority: 7, Vendor: "lingvanex", NativeAuto: true, Dialect: language.Gateway, OffByDefault: true},
	{ID: "mymemory", Name: "MyMemory", NameZh: "MyMemory 翻譯記憶庫", Family: FamilyDirect, Priority: 8, Dialect: language.MyMemory, OffByDefault: true},
	{ID: "systran", Name: "Systran", NameZh: "Systran 翻譯", Family: FamilyDirect, Priority: 9, NativeAuto: true, Dialect: language.Google},
	{ID: "deepl", Name: "DeepL", NameZh: "DeepL 翻譯", Family: FamilyDirect, Priority: 10, NativeAuto: true, Dialect: language.DeepL},
	{ID: "ollama", Name: "Ollama", NameZh: "Ollama 本地模型", Family: FamilyLLM, Priority: 11, NativeAuto: true},
	{ID: "openrouter", Name: "OpenRouter", NameZh: "OpenRouter 模型", Family: FamilyLLM, Priority: 12, NativeAuto: true},
}

// Describe returns the catalog entry for id.
func Describe(id string) (Descriptor, bool) {
	for _, d := range Catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Capabilities flags which integration families are available. Nothing is
// probed: the flags are derived from configuration.
type Capabilities struct {
	Direct  bool `json:"direct"`
	Gateway bool `json:"gateway"`
	LLM     bool `json:"llm"`
}

// Allows reports whether family f may be registered.
func (c Capabilities) Allows(f Family) bool {
	switch f {
	case FamilyDirect:
		return c.Direct
	case FamilyGateway:
		return c.Gateway
	case FamilyLLM:
		return c.LLM
	}
	return false
}
