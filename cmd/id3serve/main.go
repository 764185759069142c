// Command id3serve exposes the ID3 reader over HTTP.
//
// Environment:
//
//	PORT                    listen port (default 8080)
//	ID3SERVE_ALLOW_ORIGINS  comma-separated CORS origins
//	ID3SERVE_MAX_UPLOAD     maximum upload size in bytes
//	ID3SERVE_FULL_UTF16     decode UTF-16 text completely when set to "1"
package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/simonhull/id3meta"
	"github.com/simonhull/id3meta/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var origins []string
	for o := range strings.SplitSeq(os.Getenv("ID3SERVE_ALLOW_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	var maxUpload int64
	if v := os.Getenv("ID3SERVE_MAX_UPLOAD"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			logger.Error("invalid ID3SERVE_MAX_UPLOAD", slog.String("value", v), slog.Any("error", err))
			os.Exit(1)
		}
		maxUpload = n
	}

	opts := []id3meta.Option{id3meta.WithLogger(logger), id3meta.WithID3v1Fallback()}
	if os.Getenv("ID3SERVE_FULL_UTF16") == "1" {
		opts = append(opts, id3meta.WithFullUTF16())
	}

	handler := server.NewHandler(logger, maxUpload, opts...)
	router := server.NewRouter(handler, server.Config{AllowOrigins: origins, Logger: logger})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting",
		slog.String("port", port),
		slog.String("version", id3meta.Version),
		slog.Any("origins", origins))

	if err := router.Run(":" + port); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
