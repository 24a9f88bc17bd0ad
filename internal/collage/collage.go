// Package collage runs the one-shot render: it turns a config into the
// composed canvas and writes it to disk.
package collage

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/youruser/promocollage/internal/config"
	imagepkg "github.com/youruser/promocollage/internal/image"
	"github.com/youruser/promocollage/internal/util"
)

// Options maps the config onto the compositor's options, resolving paths
// against the configured root.
func Options(cfg *config.Config) imagepkg.CollageOptions {
	tiles := make([]imagepkg.Tile, len(cfg.Tiles))
	for i, t := range cfg.Tiles {
		tiles[i] = imagepkg.Tile{Source: cfg.Path(t.Source), Price: t.Price}
	}

	return imagepkg.CollageOptions{
		CanvasSize:    cfg.CanvasSize,
		Padding:       cfg.Padding,
		Background:    cfg.BackgroundColor(),
		Tiles:         tiles,
		WatermarkPath: cfg.Path(cfg.Watermark),
		Thumbnail: imagepkg.ThumbnailOptions{
			BadgePath:    cfg.Path(cfg.Badge),
			FontPath:     cfg.Path(cfg.Font),
			FontSize:     cfg.FontSize,
			CornerRadius: cfg.CornerRadius,
			BadgeOffset:  cfg.BadgeOffset,
			TextX:        cfg.TextX,
			TextYOffset:  cfg.TextYOffset,
			TextColor:    cfg.TextColorValue(),
		},
	}
}

// Run renders the collage and saves it, returning the output path. Nothing is
// written unless every asset loads; the output directory is created first.
func Run(cfg *config.Config, log logrus.FieldLogger) (string, error) {
	output := cfg.Path(cfg.Output)
	if err := util.EnsureParentDir(output); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	opts := Options(cfg)
	opts.OnTile = func(q imagepkg.Quadrant, t imagepkg.Tile) {
		log.WithFields(logrus.Fields{
			"tile":   q.String(),
			"source": t.Source,
			"price":  imagepkg.FormatPrice(t.Price),
		}).Info("Tile composed")
	}

	canvas, err := imagepkg.ComposeCollage(opts)
	if err != nil {
		return "", fmt.Errorf("compose collage: %w", err)
	}

	if err := imaging.Save(canvas, output); err != nil {
		return "", fmt.Errorf("save %s: %w", output, err)
	}
	log.WithFields(logrus.Fields{
		"output": output,
		"size":   canvas.Bounds().Dx(),
	}).Info("Collage saved")
	return output, nil
}
