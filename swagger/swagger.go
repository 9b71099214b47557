// Package swagger serves the OpenAPI document and a Swagger UI page for it.
package swagger

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed swagger-ui/*
var content embed.FS

// Spec returns the raw OpenAPI document.
func Spec() ([]byte, error) {
	return content.ReadFile("swagger-ui/openapi.yaml")
}

// GetHandler serves index.html and openapi.yaml from the embedded directory.
func GetHandler() (http.Handler, error) {
	subFS, err := fs.Sub(content, "swagger-ui")
	if err != nil {
		return nil, err
	}

	return http.FileServer(http.FS(subFS)), nil
}
