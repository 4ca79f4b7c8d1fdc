// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/asciify/pkg/asciify"
	"gopkg.in/yaml.v3"
)

const (
	formatPlain = "plain"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTOML  = "toml"
)

type imageInfo struct {
	Path   string `json:"path" yaml:"path" toml:"path"`
	Format string `json:"format" yaml:"format" toml:"format"`
	Type   string `json:"type" yaml:"type" toml:"type"`
	Width  int    `json:"width" yaml:"width" toml:"width"`
	Height int    `json:"height" yaml:"height" toml:"height"`
	// Columns and Rows are the size render produces with its defaults.
	Columns int `json:"columns" yaml:"columns" toml:"columns"`
	Rows    int `json:"rows" yaml:"rows" toml:"rows"`
}

func (a *app) runInspect() error {
	img, format, err := a.load()
	if err != nil {
		return err
	}
	b := img.Bounds()
	info := imageInfo{
		Path:   a.input,
		Format: format,
		Type:   fmt.Sprintf("%T", img),
		Width:  b.Dx(),
		Height: b.Dy(),
	}
	info.Columns, info.Rows = asciify.Size(b, asciify.DefaultOptions())

	switch a.format {
	case formatJSON:
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case formatYAML:
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	case formatTOML:
		return toml.NewEncoder(a.stdout).Encode(info)
	}
	_, err = fmt.Fprintf(a.stdout, "path:   %s\nformat: %s\ntype:   %s\nsize:   %dx%d\nrender: %dx%d\n",
		info.Path, info.Format, info.Type, info.Width, info.Height, info.Columns, info.Rows)
	return err
}
