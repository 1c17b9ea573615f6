package handlers

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates возвращает разобранные страничные шаблоны.
// Шаблоны встроены в бинарник — рядом с приложением ничего не лежит.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
