package engine

import "github.com/valpere/mtcompare/internal/translator"

// Integration is one family of engines ready to be registered.
type Integration struct {
	Family  Family
	Engines []Engine
}

// NewIntegration binds arbitrary engines under one family. The engines'
// own Family field is overwritten with family.
func NewIntegration(family Family, engines ...Engine) Integration {
	bound := make([]Engine, 0, len(engines))
	for _, e := range engines {
		e.Family = family
		bound = append(bound, e)
	}
	return Integration{Family: family, Engines: bound}
}

// Direct binds catalog engines of the direct family to the given backends,
// keyed by engine id. Ids without a catalog entry are ignored.
func Direct(backends map[string]translator.Backend) Integration {
	return fromCatalog(FamilyDirect, func(d Descriptor) translator.Backend { return backends[d.ID] })
}

// Gateway binds every gateway-family catalog engine to the single backend.
func Gateway(backend translator.Backend) Integration {
	return fromCatalog(FamilyGateway, func(Descriptor) translator.Backend { return backend })
}

// LLM binds catalog engines of the llm family, keyed by engine id.
func LLM(backends map[string]translator.Backend) Integration {
	return fromCatalog(FamilyLLM, func(d Descriptor) translator.Backend { return backends[d.ID] })
}

func fromCatalog(family Family, pick func(Descriptor) translator.Backend) Integration {
	in := Integration{Family: family}
	for _, d := range Catalog {
		if d.Family != family {
			continue
		}
		if b := pick(d); b != nil {
			in.Engines = append(in.Engines, Engine{Descriptor: d, Backend: b})
		}
	}
	return in
}
