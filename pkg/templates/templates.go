// Package templates provides embedded configuration and web page
// templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for application
// configuration.
//
//go:embed config.yaml
var ConfigYAML string

// IndexHTML is the page of the web front end. It shows the query form
// and, after submission, the results.
//
//go:embed index.html
var IndexHTML string
