// Package web bundles the browser client.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

// StaticFS embeds the browser client (html/js/css).
//
//go:embed static/*
var StaticFS embed.FS

// Files returns the client to serve. A non-empty dir serves files from disk,
// which lets the client be edited without rebuilding the binary.
func Files(dir string) (http.FileSystem, error) {
	if dir != "" {
		return http.Dir(dir), nil
	}
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
