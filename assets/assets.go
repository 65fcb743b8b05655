// Package assets embeds the stylesheet and the fallback card images.
package assets

import "embed"

//go:embed css/* images/*
var Assets embed.FS
