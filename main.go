package main

import (
	"log/slog"
	"os"

	"gallery/api"
)

func main() {
	args := ParseArgs()
	if err := args.Validate(); err != nil {
		slog.Error("Invalid arguments", slog.Any("error", err))
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: args.LogLevel,
	})))

	server, err := api.NewServer(args.ServerConfig)
	if err != nil {
		panic(err)
	}
	defer server.Close()

	slog.Info("Server listening", slog.String("addr", args.ServerURL))
	if err := server.Router().Run(args.ServerURL); err != nil {
		slog.Error("Server stopped", slog.Any("error", err))
	}
}
