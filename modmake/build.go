package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	xorlinkVersion = "0.2.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	for _, app := range []string{"xorenc", "xorsend"} {
		a := NewAppBuild(app, "cmd/"+app, xorlinkVersion)
		a.Build(func(gb *GoBuild) {
			gb.
				StripDebugSymbols().
				SetVariable("main", "version", xorlinkVersion).
				CgoEnabled(false)
		})
		// The sender targets the Raspberry Pi, the encoder runs wherever the secret lives.
		a.Variant("linux", "amd64")
		a.Variant("linux", "arm64")
		a.Variant("linux", "arm")
		if app == "xorenc" {
			a.Variant("windows", "amd64")
			a.Variant("darwin", "arm64")
		}
		b.ImportApp(a)
	}

	b.Execute()
}
