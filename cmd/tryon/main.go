package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/capture"
	"github.com/BruksfildServices01/barbermatch/internal/config"
	"github.com/BruksfildServices01/barbermatch/internal/infra/ai"
	"github.com/BruksfildServices01/barbermatch/internal/logger"
	"github.com/BruksfildServices01/barbermatch/internal/usecase/hairstyle"
)

func main() {
	photo := flag.String("photo", "", "path to a portrait used as the camera frame")
	style := flag.String("style", "", "hairstyle to try on; empty asks for a suggestion first")
	out := flag.String("out", "tryon.png", "where to write the generated image")
	flag.Parse()

	if *photo == "" {
		fmt.Fprintln(os.Stderr, "usage: tryon -photo face.jpg [-style \"low fade\"] [-out result.png]")
		os.Exit(2)
	}

	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, *photo, *style, *out); err != nil {
		log.Error("try-on failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger, photo, style, out string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen, err := ai.New(ctx, cfg)
	if err != nil {
		return err
	}

	session, err := capture.Start(ctx, capture.FileCamera{Path: photo})
	if err != nil {
		return err
	}
	defer session.Close()

	frame, err := session.Capture(ctx)
	if err != nil {
		return err
	}

	instruction := strings.TrimSpace(style)
	if instruction == "" {
		s, err := hairstyle.NewSuggest(gen, log).Execute(ctx, frame, "")
		if err != nil {
			return err
		}
		log.Info("suggested hairstyle",
			zap.String("face_shape", s.FaceShape),
			zap.String("hairstyle", s.HairstyleName),
		)
		instruction = s.Prompt
	}

	uri, err := hairstyle.NewTryOn(gen, log).Execute(ctx, frame, instruction)
	if err != nil {
		return err
	}

	_, payload, _ := strings.Cut(uri, ",")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}

	log.Info("try-on written", zap.String("path", out), zap.Int("bytes", len(data)))
	return nil
}
