package handler

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/vfg2006/autosales-dashboard/internal/domain"
	"github.com/vfg2006/autosales-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/autosales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/autosales-dashboard/pkg/log"
	"github.com/vfg2006/autosales-dashboard/web"
)

const dashboardTitle = "Automobile Sales Statistics Dashboard"

type dashboardPage struct {
	Title   string
	Options domain.ReportOptions
}

var dashboardTemplate = template.Must(template.ParseFS(web.TemplatesFS, "templates/*.html"))

// DashboardPage renderiza a página com os dois seletores e a grade de gráficos
func DashboardPage(reporter reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := dashboardPage{
			Title:   dashboardTitle,
			Options: reporter.ReportOptions(),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := dashboardTemplate.ExecuteTemplate(w, "dashboard.html", page); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao renderizar template")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar dashboard", nil)
		}
	})
}

// StaticAssets serve css e js embutidos no binário
func StaticAssets() http.Handler {
	sub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}

	static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		static.ServeHTTP(w, r)
	})
}
