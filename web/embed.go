// Package web embute o template e os arquivos estáticos do dashboard
package web

import "embed"

// TemplatesFS contém os templates HTML renderizados no servidor
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS contém css e js do dashboard
//
//go:embed static/*
var StaticFS embed.FS
