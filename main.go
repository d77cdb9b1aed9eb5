// Command chord-angle is an interactive demonstration of the inscribed
// angle theorem: chord AB is fixed, P moves on the circle, and ∠APB stays
// constant on each arc.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/chord-angle/internal/config"
	"github.com/iburimskiy/chord-angle/internal/explain"
	"github.com/iburimskiy/chord-angle/internal/game"
	"github.com/iburimskiy/chord-angle/internal/store"
)

func main() {
	settings := config.Load(os.LookupEnv)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: settings.LogLevel,
	}))
	slog.SetDefault(logger)

	// ── Explanation cache ─────────────────────────────────────────────
	var (
		cache explain.Cache
		last  string
	)
	if settings.DBPath != "" {
		db, err := store.Open(settings.DBPath)
		if err != nil {
			slog.Warn("explanation cache disabled", "path", settings.DBPath, "error", err)
		} else {
			defer db.Close()
			cache = db
			slog.Info("explanation cache opened", "path", settings.DBPath)
			recent, err := db.Recent(context.Background(), 1)
			switch {
			case err != nil:
				slog.Warn("read recent explanations", "error", err)
			case len(recent) > 0:
				last = recent[0].Text
				slog.Debug("restoring last explanation",
					"spread", recent[0].ChordSpread,
					"created_at", recent[0].CreatedAt,
				)
			}
		}
	}

	// ── Explanation service ───────────────────────────────────────────
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := explain.NewClient(ctx, explain.ClientOptions{
		APIKey: settings.APIKey,
		Model:  settings.Model,
	})
	switch {
	case err != nil:
		slog.Warn("explanation service unavailable", "error", err)
	case client.Enabled():
		slog.Info("explanation service enabled", "model", settings.Model)
	default:
		slog.Warn("GEMINI_API_KEY not set, explanations will show a fallback message")
	}
	explainer := explain.NewExplainer(client, cache)

	// ── Window ────────────────────────────────────────────────────────
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Fixed chord, fixed angle - Space: Play/Pause, R: Reset, E: Ask tutor, Esc/Q: Quit")

	g := game.New(ctx, explainer, settings.Mute)
	defer g.Close()
	g.RestoreExplanation(last)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
