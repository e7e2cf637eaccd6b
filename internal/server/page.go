package server

import (
	"embed"
	"html/template"
	"net/http"
	"slices"

	"github.com/valpere/mtcompare/internal/engine"
	"github.com/valpere/mtcompare/internal/examples"
	"github.com/valpere/mtcompare/internal/language"
	"github.com/valpere/mtcompare/internal/render"
)

//go:embed web/index.html
var webFS embed.FS

var indexTmpl = template.Must(template.ParseFS(webFS, "web/index.html"))

type engineChoice struct {
	engine.Descriptor
	Checked bool
}

type pageData struct {
	Intro       template.HTML
	Tips        template.HTML
	Placeholder string
	Source      string
	Target      string
	Sources     []language.Option
	Targets     []language.Option
	Engines     []engineChoice
	Examples    []examples.Category
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	defaults := s.registry.Defaults()
	choices := make([]engineChoice, 0, s.registry.Len())
	for _, d := range s.registry.Descriptors() {
		choices = append(choices, engineChoice{Descriptor: d, Checked: slices.Contains(defaults, d.ID)})
	}

	data := pageData{
		Intro:       render.Intro(),
		Tips:        render.Tips(),
		Placeholder: "Enter a term here... 在此輸入術語...\n\nExamples: 衞生署衞生防護中心, blockchain, 碳中和",
		Source:      s.opts.Source,
		Target:      s.opts.Target,
		Sources:     append([]language.Option{{Code: language.Auto, Label: language.Label(language.Auto)}}, language.Supported...),
		Targets:     language.Supported,
		Engines:     choices,
		Examples:    examples.Catalog,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.log.Error().Err(err).Msg("render index")
	}
}
