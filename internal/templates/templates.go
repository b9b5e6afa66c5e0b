// Package templates embeds the HTML screens of the study server.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
