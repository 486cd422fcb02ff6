package ui

import (
	"encoding/json"
	"io/fs"
	"path"
	"strings"
	"sync"

	"dwex-demo/internal/ui/assets"
)

const staticPrefix = "/static/"

// manifest maps a logical asset name to a fingerprinted file name in the
// same directory. It is optional; without it names are served as is.
type manifest struct {
	dir  string
	ext  string
	once sync.Once
	m    map[string]string
}

var (
	scriptManifest     = &manifest{dir: "js", ext: ".js"}
	stylesheetManifest = &manifest{dir: "css", ext: ".css"}
)

func (mf *manifest) href(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || path.Base(name) != name || path.Ext(name) != mf.ext {
		return ""
	}
	mf.once.Do(func() {
		mf.m = map[string]string{}
		raw, err := fs.ReadFile(assets.StaticFS(), "static/"+mf.dir+"/manifest.json")
		if err != nil {
			return
		}
		if err := json.Unmarshal(raw, &mf.m); err != nil {
			mf.m = map[string]string{}
		}
	})
	target := name
	if hashed := strings.TrimSpace(mf.m[name]); hashed != "" && path.Base(hashed) == hashed && path.Ext(hashed) == mf.ext {
		target = hashed
	}
	return staticPrefix + mf.dir + "/" + target
}

func uiScriptHref(name string) string {
	if href := scriptManifest.href(name); href != "" {
		return href
	}
	return staticPrefix + "js/shell.js"
}

func uiStylesheetHref() string {
	return stylesheetManifest.href("app.css")
}
