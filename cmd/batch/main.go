package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"imgarray/pkg/encode"
	"imgarray/pkg/generate"
	"imgarray/pkg/render"
)

var inDir = flag.String("in", ".", "input directory")
var outDir = flag.String("out", ".", "output directory")
var outColor = flag.String("out-color", "gray8", "output color mode")
var outLang = flag.String("out-lang", "c", "output language (c, rust)")
var blackLevel = flag.Uint8("black-level", 128, "black level for monochrome out-colors")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			zap.NewDevelopment,
			afero.NewOsFs,
			generate.New,
		),
		fx.Invoke(run),
	).Run()
}

func run(lc fx.Lifecycle, sd fx.Shutdowner, g *generate.Generator, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := batch(g, logger); err != nil {
					logger.With(zap.Error(err)).Error("batch failed")
				}
				_ = sd.Shutdown()
			}()
			return nil
		},
	})
}

func batch(g *generate.Generator, logger *zap.Logger) error {
	mode, err := encode.ParseMode(*outColor)
	if err != nil {
		return err
	}

	lang, err := generate.ParseLang(*outLang)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(*inDir)
	if err != nil {
		return err
	}

	var inputs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
			inputs = append(inputs, e.Name())
		}
	}

	ext := lo.Ternary(lang == generate.LangC, ".h", ".rs")
	bar := progressbar.Default(int64(len(inputs)), "Converting")

	for _, name := range inputs {
		req := generate.Request{
			Input:  filepath.Join(*inDir, name),
			Output: filepath.Join(*outDir, strings.TrimSuffix(name, filepath.Ext(name))+ext),
			Encode: encode.Config{
				Mode:       mode,
				BlackLevel: *blackLevel,
			},
			Base:     render.Hex,
			Order:    render.LE,
			Lang:     lang,
			Includes: []string{"<stdint.h>"},
		}
		if err := g.Run(req); err != nil {
			logger.With(zap.String("input", name), zap.Error(err)).Warn("convert failed")
		}
		_ = bar.Add(1)
	}

	return nil
}
