package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"meal-manager/internal/model"
)

//go:embed templates static
var assets embed.FS

// Static returns the embedded static asset tree, rooted at static/.
func Static() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Templates parses all embedded page templates plus the shared layout
// partials ("head", "nav").
func Templates() *template.Template {
	funcs := template.FuncMap{
		"badgeClass": badgeClass,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(assets, "templates/*.html"))
}

func badgeClass(mealType string) string {
	switch mealType {
	case model.MealTypeBreakfast:
		return "badge-breakfast"
	case model.MealTypeLunch:
		return "badge-lunch"
	case model.MealTypeDinner:
		return "badge-dinner"
	case model.MealTypeSnack:
		return "badge-snack"
	}
	return "badge-default"
}
